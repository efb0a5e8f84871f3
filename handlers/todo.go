package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"unison/middleware"
	"unison/models"
	"unison/store"
	"unison/utils"
)

type TodoBody struct {
	Title         string `json:"title" binding:"required,max=256"`
	Category      string `json:"category" binding:"max=64"`
	Estimation    int    `json:"estimation" binding:"required,min=1"`
	Total         int    `json:"total" binding:"required,min=1"`
	Progress      int    `json:"progress" binding:"min=0"`
	DurationFocus int    `json:"durationFocus" binding:"min=0"`
	Active        bool   `json:"active"`
	Archived      bool   `json:"archived"`
}

func (h *Handler) ListTodos(c *gin.Context) {
	userID := middleware.GetUserID(c)

	todos, err := h.store.TodosByUser(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("list todos failed", zap.Error(err), zap.String("user", userID))
		utils.InternalError(c, "failed to list todos")
		return
	}
	if todos == nil {
		todos = []*models.Todo{}
	}

	utils.Success(c, todos)
}

func (h *Handler) CreateTodo(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req TodoBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	todo, err := h.store.CreateTodo(c.Request.Context(), &models.Todo{
		UserID:        userID,
		Title:         req.Title,
		Category:      req.Category,
		Estimation:    req.Estimation,
		Total:         req.Total,
		Progress:      req.Progress,
		DurationFocus: req.DurationFocus,
		Active:        req.Active,
		Archived:      req.Archived,
	})
	if err != nil {
		h.log.Error("create todo failed", zap.Error(err), zap.String("user", userID))
		utils.InternalError(c, "failed to create todo")
		return
	}

	utils.Success(c, todo)
}

func (h *Handler) UpdateTodo(c *gin.Context) {
	userID := middleware.GetUserID(c)
	todoID := c.Param("id")

	var req TodoBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	todo, err := h.store.UpdateTodo(c.Request.Context(), &models.Todo{
		ID:            todoID,
		UserID:        userID,
		Title:         req.Title,
		Category:      req.Category,
		Estimation:    req.Estimation,
		Total:         req.Total,
		Progress:      req.Progress,
		DurationFocus: req.DurationFocus,
		Active:        req.Active,
		Archived:      req.Archived,
	})
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFound(c, utils.CodeNotFound, "todo not found")
		return
	}
	if err != nil {
		h.log.Error("update todo failed", zap.Error(err), zap.String("user", userID))
		utils.InternalError(c, "failed to update todo")
		return
	}

	utils.Success(c, todo)
}
