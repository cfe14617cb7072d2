package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mkarimi-dev/employee-leave-api/internal/model"
	"github.com/mkarimi-dev/employee-leave-api/internal/queue"
	"github.com/mkarimi-dev/employee-leave-api/internal/repository"
)

const dateLayout = "2006-01-02"

// LeaveHandler serves the leave-request endpoints. Users is only
// consulted in strict mode, to check that a referenced userId exists.
// Publish, when non-nil, is invoked after successful mutations with a
// lifecycle event; failures there never fail the request.
type LeaveHandler struct {
	Leaves  LeaveStore
	Users   UserStore
	Strict  bool
	Publish func(ctx context.Context, ev queue.LeaveRecordedEvent) error
}

func NewLeaveHandler(leaves LeaveStore, users UserStore, strict bool,
	publish func(ctx context.Context, ev queue.LeaveRecordedEvent) error) *LeaveHandler {
	return &LeaveHandler{Leaves: leaves, Users: users, Strict: strict, Publish: publish}
}

type leaveReq struct {
	From             string `json:"from"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Reason           string `json:"reason"`
	EmergencyContact string `json:"emergencyContact"`
	UserID           int64  `json:"userId"`
}

// List returns every leave request in insertion order.
func (h *LeaveHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	leaves, err := h.Leaves.List(ctx)
	if err != nil {
		return internalError(c, "list leaves", err)
	}
	return c.JSON(http.StatusOK, leaves)
}

// Get returns a single leave request by id.
func (h *LeaveHandler) Get(c echo.Context) error {
	leaveID, err := pathID(c, "leaveId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid leaveId"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	l, err := h.Leaves.Get(ctx, leaveID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Leave not found"})
		}
		return internalError(c, "get leave", err)
	}
	return c.JSON(http.StatusOK, l)
}

// Create records a new leave request.
func (h *LeaveHandler) Create(c echo.Context) error {
	var req leaveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if field, ok := firstMissingLeaveField(req); !ok {
		return validationError(c, field)
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if h.Strict {
		msg, err := h.checkStrict(ctx, req)
		if err != nil {
			return internalError(c, "validate leave", err)
		}
		if msg != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
		}
	}

	l, err := h.Leaves.Create(ctx, model.Leave{
		From:             req.From,
		To:               req.To,
		Type:             req.Type,
		Reason:           req.Reason,
		EmergencyContact: req.EmergencyContact,
		UserID:           req.UserID,
	})
	if err != nil {
		return internalError(c, "create leave", err)
	}
	h.publish("created", l)
	return c.JSON(http.StatusCreated, l)
}

// Update rewrites every mutable field of a leave request.
func (h *LeaveHandler) Update(c echo.Context) error {
	leaveID, err := pathID(c, "leaveId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid leaveId"})
	}
	var req leaveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if field, ok := firstMissingLeaveField(req); !ok {
		return validationError(c, field)
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if h.Strict {
		msg, err := h.checkStrict(ctx, req)
		if err != nil {
			return internalError(c, "validate leave", err)
		}
		if msg != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
		}
	}

	l, err := h.Leaves.Update(ctx, model.Leave{
		LeaveID:          leaveID,
		From:             req.From,
		To:               req.To,
		Type:             req.Type,
		Reason:           req.Reason,
		EmergencyContact: req.EmergencyContact,
		UserID:           req.UserID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Leave not found"})
		}
		return internalError(c, "update leave", err)
	}
	h.publish("updated", l)
	return c.JSON(http.StatusOK, l)
}

// Delete removes a leave request and echoes the deleted record. A
// second delete of the same id is a 404, not a no-op.
func (h *LeaveHandler) Delete(c echo.Context) error {
	leaveID, err := pathID(c, "leaveId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid leaveId"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	l, err := h.Leaves.Delete(ctx, leaveID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Leave not found"})
		}
		return internalError(c, "delete leave", err)
	}
	h.publish("deleted", l)
	return c.JSON(http.StatusOK, echo.Map{
		"message":      "Leave deleted successfully",
		"deletedLeave": l,
	})
}

// checkStrict enforces the optional validations: parseable dates,
// from <= to, and a userId that matches an existing profile. The
// returned message describes a client error; a non-nil error means
// the check itself failed.
func (h *LeaveHandler) checkStrict(ctx context.Context, req leaveReq) (string, error) {
	from, err := time.Parse(dateLayout, req.From)
	if err != nil {
		return "Invalid from date", nil
	}
	to, err := time.Parse(dateLayout, req.To)
	if err != nil {
		return "Invalid to date", nil
	}
	if from.After(to) {
		return "from must not be after to", nil
	}
	if h.Users != nil {
		if _, err := h.Users.Get(ctx, req.UserID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return "Unknown userId", nil
			}
			return "", err
		}
	}
	return "", nil
}

// publish sends a lifecycle event in the background. The request does
// not wait on the broker.
func (h *LeaveHandler) publish(action string, l model.Leave) {
	if h.Publish == nil {
		return
	}
	ev := queue.LeaveRecordedEvent{
		Action:     action,
		LeaveID:    l.LeaveID,
		UserID:     l.UserID,
		From:       l.From,
		To:         l.To,
		Type:       l.Type,
		RecordedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.Publish(ctx, ev) // publisher logs its own failures
	}()
}

func firstMissingLeaveField(req leaveReq) (string, bool) {
	switch {
	case req.From == "":
		return "from", false
	case req.To == "":
		return "to", false
	case req.Type == "":
		return "type", false
	case req.Reason == "":
		return "reason", false
	case req.EmergencyContact == "":
		return "emergencyContact", false
	case req.UserID == 0:
		return "userId", false
	}
	return "", true
}
