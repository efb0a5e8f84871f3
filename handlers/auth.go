package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"unison/models"
	"unison/store"
	"unison/utils"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,len=64,hexadecimal"`
	Name     string `json:"name" binding:"required,min=3,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,len=64,hexadecimal"`
}

type RefreshRequest struct {
	Token string `json:"token" binding:"required"`
}

type AuthResponse struct {
	Token string              `json:"token"`
	User  models.UserResponse `json:"user"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	user, err := h.store.CreateAccount(c.Request.Context(), req.Email, req.Name, req.Password)
	if errors.Is(err, store.ErrDuplicate) {
		utils.Conflict(c, utils.CodeUserExists, "email or name already registered")
		return
	}
	if err != nil {
		h.log.Error("create account failed", zap.Error(err))
		utils.InternalError(c, "failed to create account")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.log.Error("issue token failed", zap.Error(err))
		utils.InternalError(c, "failed to issue token")
		return
	}

	utils.Success(c, AuthResponse{Token: token, User: *user.ToResponse()})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	user, err := h.store.Authenticate(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, store.ErrInvalidCredentials) {
		utils.Unauthorized(c, utils.CodeInvalidLogin, "invalid email or password")
		return
	}
	if err != nil {
		h.log.Error("authenticate failed", zap.Error(err))
		utils.InternalError(c, "failed to authenticate")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.log.Error("issue token failed", zap.Error(err))
		utils.InternalError(c, "failed to issue token")
		return
	}

	utils.Success(c, AuthResponse{Token: token, User: *user.ToResponse()})
}

// Refresh exchanges a still-valid session token for a fresh one. Any
// failure to validate or renew reads as an expired session.
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	token, userID, err := h.tokens.Renew(req.Token)
	if err != nil {
		utils.Unauthorized(c, utils.CodeTokenExpired, "session expired")
		return
	}

	user, err := h.store.AccountByID(c.Request.Context(), userID)
	if err != nil {
		utils.Unauthorized(c, utils.CodeTokenExpired, "session expired")
		return
	}

	utils.Success(c, AuthResponse{Token: token, User: *user.ToResponse()})
}
