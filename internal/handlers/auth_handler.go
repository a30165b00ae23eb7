package handlers

import (
	"errors"
	"net/http"

	"finlit-agent/internal/models"
	"finlit-agent/internal/service"
	"finlit-agent/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Username and password are required", err)
		return
	}

	userID, err := h.Auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error(), nil)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"userId":  userID,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Username and password are required", err)
		return
	}

	token, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid username or password", nil)
		return
	}
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error(), nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}
