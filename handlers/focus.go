package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"unison/middleware"
	"unison/models"
	"unison/utils"
)

type FocusTodoBody struct {
	Todo          string `json:"todo" binding:"required,len=15"`
	Duration      int    `json:"duration" binding:"required,min=1"`
	ProgressStart int    `json:"progressStart" binding:"min=0"`
	ProgressEnd   int    `json:"progressEnd" binding:"min=0"`
}

type FocusBody struct {
	Start               time.Time       `json:"start" binding:"required"`
	End                 time.Time       `json:"end" binding:"required"`
	DurationTarget      int             `json:"durationTarget" binding:"required,min=1"`
	DurationFocus       int             `json:"durationFocus" binding:"required,min=1"`
	DurationInterrupted int             `json:"durationInterrupted" binding:"min=0"`
	Todos               []FocusTodoBody `json:"todos" binding:"dive"`
}

func (h *Handler) ListFocusSessions(c *gin.Context) {
	userID := middleware.GetUserID(c)

	sessions, err := h.store.FocusSessionsByUser(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("list focus sessions failed", zap.Error(err), zap.String("user", userID))
		utils.InternalError(c, "failed to list focus sessions")
		return
	}
	if sessions == nil {
		sessions = []*models.FocusSession{}
	}

	utils.Success(c, sessions)
}

func (h *Handler) CreateFocusSession(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req FocusBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if !req.End.After(req.Start) {
		utils.BadRequest(c, "end must be after start")
		return
	}

	session := &models.FocusSession{
		UserID:              userID,
		Start:               req.Start,
		End:                 req.End,
		DurationTarget:      req.DurationTarget,
		DurationFocus:       req.DurationFocus,
		DurationInterrupted: req.DurationInterrupted,
		Todos:               make([]models.FocusTodo, 0, len(req.Todos)),
	}
	for _, link := range req.Todos {
		session.Todos = append(session.Todos, models.FocusTodo{
			TodoID:        link.Todo,
			Duration:      link.Duration,
			ProgressStart: link.ProgressStart,
			ProgressEnd:   link.ProgressEnd,
		})
	}

	created, err := h.store.CreateFocusSession(c.Request.Context(), session)
	if err != nil {
		h.log.Error("create focus session failed", zap.Error(err), zap.String("user", userID))
		utils.InternalError(c, "failed to record focus session")
		return
	}

	utils.Success(c, created)
}
