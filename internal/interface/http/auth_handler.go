package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devconnector/devconnector-api/internal/application"
	"github.com/devconnector/devconnector-api/pkg/response"
	"github.com/devconnector/devconnector-api/pkg/validation"
)

// AuthHandler serves registration, login and the authenticated-user lookup.
type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/users
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validation.ToErrors(err))
		return
	}
	token, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.ValidationErrors(c, []response.FieldError{{Msg: "User already exists", Param: "email"}})
			return
		}
		response.ServerError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"token": token})
}

// Login POST /api/auth
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validation.ToErrors(err))
		return
	}
	token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.ValidationErrors(c, []response.FieldError{{Msg: "Invalid Credentials"}})
			return
		}
		response.ServerError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"token": token})
}

// GetUser GET /api/auth (auth required)
func (h *AuthHandler) GetUser(c *gin.Context) {
	uid := c.GetString("userID")
	u, err := h.Svc.GetUser(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Msg(c, http.StatusNotFound, "User not found")
			return
		}
		response.ServerError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, u)
}
