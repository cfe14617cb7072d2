package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mkarimi-dev/employee-leave-api/internal/model"
	"github.com/mkarimi-dev/employee-leave-api/internal/repository"
)

// In-memory stores standing in for the persistence gateway. They
// honor the same contract as the repositories: repository.ErrNotFound
// on zero matching rows, and an injectable error for failure paths.

type fakeUserStore struct {
	users map[int64]model.User
	order []int64
	err   error // when set, every call fails with it
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]model.User{}}
}

func (s *fakeUserStore) List(ctx context.Context) ([]model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]model.User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.users[id])
	}
	return out, nil
}

func (s *fakeUserStore) Get(ctx context.Context, userID int64) (model.User, error) {
	if s.err != nil {
		return model.User{}, s.err
	}
	u, ok := s.users[userID]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (s *fakeUserStore) Create(ctx context.Context, u model.User) error {
	if s.err != nil {
		return s.err
	}
	s.users[u.UserID] = u
	s.order = append(s.order, u.UserID)
	return nil
}

func (s *fakeUserStore) Update(ctx context.Context, u model.User) (model.User, error) {
	if s.err != nil {
		return model.User{}, s.err
	}
	cur, ok := s.users[u.UserID]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	u.Password = cur.Password // credential never changes via update
	s.users[u.UserID] = u
	return u, nil
}

func (s *fakeUserStore) Delete(ctx context.Context, userID int64) (model.User, error) {
	if s.err != nil {
		return model.User{}, s.err
	}
	u, ok := s.users[userID]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	delete(s.users, userID)
	for i, id := range s.order {
		if id == userID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return u, nil
}

type fakeLeaveStore struct {
	leaves map[int64]model.Leave
	order  []int64
	nextID int64
	err    error
}

func newFakeLeaveStore() *fakeLeaveStore {
	return &fakeLeaveStore{leaves: map[int64]model.Leave{}, nextID: 1}
}

func (s *fakeLeaveStore) List(ctx context.Context) ([]model.Leave, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]model.Leave, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.leaves[id])
	}
	return out, nil
}

func (s *fakeLeaveStore) Get(ctx context.Context, leaveID int64) (model.Leave, error) {
	if s.err != nil {
		return model.Leave{}, s.err
	}
	l, ok := s.leaves[leaveID]
	if !ok {
		return model.Leave{}, repository.ErrNotFound
	}
	return l, nil
}

func (s *fakeLeaveStore) Create(ctx context.Context, l model.Leave) (model.Leave, error) {
	if s.err != nil {
		return model.Leave{}, s.err
	}
	l.LeaveID = s.nextID
	s.nextID++
	s.leaves[l.LeaveID] = l
	s.order = append(s.order, l.LeaveID)
	return l, nil
}

func (s *fakeLeaveStore) Update(ctx context.Context, l model.Leave) (model.Leave, error) {
	if s.err != nil {
		return model.Leave{}, s.err
	}
	if _, ok := s.leaves[l.LeaveID]; !ok {
		return model.Leave{}, repository.ErrNotFound
	}
	s.leaves[l.LeaveID] = l
	return l, nil
}

func (s *fakeLeaveStore) Delete(ctx context.Context, leaveID int64) (model.Leave, error) {
	if s.err != nil {
		return model.Leave{}, s.err
	}
	l, ok := s.leaves[leaveID]
	if !ok {
		return model.Leave{}, repository.ErrNotFound
	}
	delete(s.leaves, leaveID)
	for i, id := range s.order {
		if id == leaveID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return l, nil
}

// newContext builds an Echo context for a handler call. Path params
// are given as alternating name/value pairs.
func newContext(t *testing.T, method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(r, rec)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}
