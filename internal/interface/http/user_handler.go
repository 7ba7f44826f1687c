package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/hello-users-api/internal/application"
	"github.com/oksasatya/hello-users-api/internal/domain/entity"
	"github.com/oksasatya/hello-users-api/pkg/response"
)

const (
	msgInvalidRequest  = "Invalid request"
	msgUserNotFound    = "User not found"
	msgEmailExists     = "Email already exists"
	msgCreateFailed    = "User could not be created"
	msgInternalFailure = "Internal server error"
	msgUserDeleted     = "User deleted"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// createUserRequest uses pointer fields so a key that is present but empty
// still binds, while an absent or null key fails the required check.
type createUserRequest struct {
	Name  *string `json:"name" binding:"required"`
	Email *string `json:"email" binding:"required"`
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list users failed")
		response.Err(c, http.StatusInternalServerError, msgInternalFailure)
		return
	}
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, err := h.Svc.Get(c.Request.Context(), id)
	if errors.Is(err, userapp.ErrUserNotFound) {
		response.Err(c, http.StatusNotFound, msgUserNotFound)
		return
	}
	if err != nil {
		h.Logger.WithError(err).WithField("id", id).Error("get user failed")
		response.Err(c, http.StatusInternalServerError, msgInternalFailure)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(u))
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), entity.UserDraft{Name: req.Name, Email: req.Email})
	if errors.Is(err, userapp.ErrEmailTaken) {
		response.Err(c, http.StatusConflict, msgEmailExists)
		return
	}
	if err != nil {
		response.Err(c, http.StatusInternalServerError, msgCreateFailed)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(u))
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// The existence check comes before payload validation, so an update
	// against a missing user is a 404 even when the body is garbage.
	exists, err := h.Svc.Exists(c.Request.Context(), id)
	if err != nil {
		h.Logger.WithError(err).WithField("id", id).Error("user existence check failed")
		response.Err(c, http.StatusInternalServerError, msgInternalFailure)
		return
	}
	if !exists {
		response.Err(c, http.StatusNotFound, msgUserNotFound)
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Name == nil && req.Email == nil) {
		response.Err(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	u, err := h.Svc.Update(c.Request.Context(), id, entity.UserDraft{Name: req.Name, Email: req.Email})
	switch {
	case errors.Is(err, userapp.ErrEmailTaken):
		response.Err(c, http.StatusConflict, msgEmailExists)
	case errors.Is(err, userapp.ErrUserNotFound):
		response.Err(c, http.StatusNotFound, msgUserNotFound)
	case err != nil:
		h.Logger.WithError(err).WithField("id", id).Error("update user failed")
		response.Err(c, http.StatusInternalServerError, msgInternalFailure)
	default:
		c.JSON(http.StatusOK, toUserResponse(u))
	}
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	err := h.Svc.Delete(c.Request.Context(), id)
	if errors.Is(err, userapp.ErrUserNotFound) {
		response.Err(c, http.StatusNotFound, msgUserNotFound)
		return
	}
	if err != nil {
		h.Logger.WithError(err).WithField("id", id).Error("delete user failed")
		response.Err(c, http.StatusInternalServerError, msgInternalFailure)
		return
	}
	response.Message(c, http.StatusOK, msgUserDeleted)
}

// parseID reads the :id path segment. A non-integer id means no such user
// route exists, which renders as a 404 rather than a 400.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Err(c, http.StatusNotFound, msgUserNotFound)
		return 0, false
	}
	return id, true
}
