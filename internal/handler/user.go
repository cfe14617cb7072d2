package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mkarimi-dev/employee-leave-api/internal/auth"
	"github.com/mkarimi-dev/employee-leave-api/internal/model"
	"github.com/mkarimi-dev/employee-leave-api/internal/repository"
)

// UserHandler bundles the dependencies for profile endpoints: the
// store, the credential hasher and the token service.
type UserHandler struct {
	Users  UserStore
	Hasher *auth.PasswordHasher
	Tokens *auth.TokenService
}

func NewUserHandler(users UserStore, hasher *auth.PasswordHasher, tokens *auth.TokenService) *UserHandler {
	return &UserHandler{Users: users, Hasher: hasher, Tokens: tokens}
}

// ----- DTOs -----

type loginReq struct {
	UserID   int64  `json:"userId"`
	Password string `json:"password"`
}

type createUserReq struct {
	UserID      int64  `json:"userId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	DateOfBirth string `json:"dateOfBirth"`
	Supervisor  string `json:"supervisor"`
	Password    string `json:"password"`
}

type updateUserReq struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	DateOfBirth string `json:"dateOfBirth"`
	Supervisor  string `json:"supervisor"`
}

// Login verifies a userId/password pair and returns a fresh bearer
// token. Unknown users and wrong passwords are reported distinctly
// (404 vs 401).
func (h *UserHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil || req.UserID == 0 || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing userId or password"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.Users.Get(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return internalError(c, "login: load user", err)
	}
	if !h.Hasher.Verify(req.Password, u.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid password"})
	}

	token, err := h.Tokens.Issue(u.UserID)
	if err != nil {
		return internalError(c, "login: issue token", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// List returns every profile. Password digests are excluded by the
// model's JSON mapping.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return internalError(c, "list users", err)
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns a single profile by personnel number.
func (h *UserHandler) Get(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid userId"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.Users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return internalError(c, "get user", err)
	}
	return c.JSON(http.StatusOK, u)
}

// Create registers a new profile. The plaintext password is hashed
// before it ever reaches the store. This route is unauthenticated:
// registration has to work before any token exists.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if field, ok := firstMissingUserField(req); !ok {
		return validationError(c, field)
	}

	digest, err := h.Hasher.Hash(req.Password)
	if err != nil {
		return internalError(c, "create user: hash password", err)
	}

	u := model.User{
		UserID:      req.UserID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Designation: req.Designation,
		DateOfBirth: req.DateOfBirth,
		Supervisor:  req.Supervisor,
		Password:    digest,
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Users.Create(ctx, u); err != nil {
		return internalError(c, "create user", err)
	}
	return c.JSON(http.StatusCreated, u)
}

// Update rewrites the mutable profile fields. The personnel number
// and the credential cannot be changed through this path.
func (h *UserHandler) Update(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid userId"})
	}
	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if field, ok := firstMissingUpdateField(req); !ok {
		return validationError(c, field)
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.Users.Update(ctx, model.User{
		UserID:      userID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Designation: req.Designation,
		DateOfBirth: req.DateOfBirth,
		Supervisor:  req.Supervisor,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return internalError(c, "update user", err)
	}
	return c.JSON(http.StatusOK, u)
}

// Delete removes a profile and confirms with the deleted user's name.
func (h *UserHandler) Delete(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid userId"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.Users.Delete(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return internalError(c, "delete user", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("User %s deleted successfully", u.FirstName),
	})
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func firstMissingUserField(req createUserReq) (string, bool) {
	switch {
	case req.UserID == 0:
		return "userId", false
	case req.FirstName == "":
		return "firstName", false
	case req.LastName == "":
		return "lastName", false
	case req.Email == "":
		return "email", false
	case req.Designation == "":
		return "designation", false
	case req.DateOfBirth == "":
		return "dateOfBirth", false
	case req.Supervisor == "":
		return "supervisor", false
	case req.Password == "":
		return "password", false
	}
	return "", true
}

func firstMissingUpdateField(req updateUserReq) (string, bool) {
	switch {
	case req.FirstName == "":
		return "firstName", false
	case req.LastName == "":
		return "lastName", false
	case req.Email == "":
		return "email", false
	case req.Designation == "":
		return "designation", false
	case req.DateOfBirth == "":
		return "dateOfBirth", false
	case req.Supervisor == "":
		return "supervisor", false
	}
	return "", true
}
