package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"unison/friends"
	"unison/middleware"
	"unison/utils"
)

type FriendRequestBody struct {
	TargetUserID string `json:"targetUserID" binding:"required,len=15"`
}

type FriendApproveBody struct {
	ID string `json:"id" binding:"required,len=15"`
}

type FriendRefuseBody struct {
	Relation string `json:"relation" binding:"required,len=15"`
	Reason   string `json:"reason" binding:"required,max=256"`
}

func (h *Handler) ListFriends(c *gin.Context) {
	userID := middleware.GetUserID(c)

	views, err := h.friends.List(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("list friends failed", zap.Error(err), zap.String("user", userID))
		utils.InternalError(c, "failed to list friends")
		return
	}

	utils.Success(c, views)
}

func (h *Handler) RequestFriend(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req FriendRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	_, err := h.friends.Request(c.Request.Context(), userID, req.TargetUserID)
	switch {
	case errors.Is(err, friends.ErrSelfRequest):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, friends.ErrTargetNotFound):
		utils.NotFound(c, utils.CodeUserNotFound, "user not found")
	case errors.Is(err, friends.ErrRelationExists):
		utils.Conflict(c, utils.CodeRelationExists, err.Error())
	case err != nil:
		h.log.Error("friend request failed", zap.Error(err), zap.String("user", userID))
		utils.InternalError(c, "failed to create friend request")
	default:
		utils.Success(c, gin.H{})
	}
}

func (h *Handler) ApproveFriend(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req FriendApproveBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	view, err := h.friends.Approve(c.Request.Context(), userID, req.ID)
	switch {
	case errors.Is(err, friends.ErrRelationNotFound):
		utils.NotFound(c, utils.CodeRelationNotFound, "relation not found")
	case errors.Is(err, friends.ErrRelationSettled):
		utils.Conflict(c, utils.CodeRelationSettled, err.Error())
	case err != nil:
		h.log.Error("friend approve failed", zap.Error(err), zap.String("user", userID))
		utils.InternalError(c, "failed to approve friend request")
	default:
		utils.Success(c, view)
	}
}

func (h *Handler) RefuseFriend(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req FriendRefuseBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	err := h.friends.Refuse(c.Request.Context(), userID, req.Relation, req.Reason)
	switch {
	case errors.Is(err, friends.ErrReasonRequired):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, friends.ErrRelationNotFound):
		utils.NotFound(c, utils.CodeRelationNotFound, "relation not found")
	case errors.Is(err, friends.ErrRelationSettled):
		utils.Conflict(c, utils.CodeRelationSettled, err.Error())
	case err != nil:
		h.log.Error("friend refuse failed", zap.Error(err), zap.String("user", userID))
		utils.InternalError(c, "failed to refuse friend request")
	default:
		utils.Success(c, gin.H{})
	}
}
