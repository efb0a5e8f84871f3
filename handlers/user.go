package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"unison/middleware"
	"unison/store"
	"unison/utils"
)

func (h *Handler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.store.AccountByID(c.Request.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFound(c, utils.CodeNotFound, "user not found")
		return
	}
	if err != nil {
		h.log.Error("load account failed", zap.Error(err), zap.String("user", userID))
		utils.InternalError(c, "failed to load account")
		return
	}

	utils.Success(c, user.ToResponse())
}
