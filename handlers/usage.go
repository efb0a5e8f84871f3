package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"unison/middleware"
	"unison/models"
	"unison/utils"
)

type AppUsageBody struct {
	AppName  string    `json:"appName" binding:"required,max=256"`
	Start    time.Time `json:"start" binding:"required"`
	Duration int       `json:"duration" binding:"required,min=1"`
}

func (h *Handler) ListAppUsage(c *gin.Context) {
	userID := middleware.GetUserID(c)

	usages, err := h.store.AppUsageByUser(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("list app usage failed", zap.Error(err), zap.String("user", userID))
		utils.InternalError(c, "failed to list app usage")
		return
	}
	if usages == nil {
		usages = []*models.AppUsage{}
	}

	utils.Success(c, usages)
}

func (h *Handler) CreateAppUsage(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AppUsageBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	usage, err := h.store.CreateAppUsage(c.Request.Context(), &models.AppUsage{
		UserID:   userID,
		AppName:  req.AppName,
		Start:    req.Start,
		Duration: req.Duration,
	})
	if err != nil {
		h.log.Error("create app usage failed", zap.Error(err), zap.String("user", userID))
		utils.InternalError(c, "failed to record app usage")
		return
	}

	utils.Success(c, usage)
}
