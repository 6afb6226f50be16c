package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"simplechat/internal/dto"
	apierrors "simplechat/internal/errors"
	"simplechat/internal/services"
)

// LikeHandler coordinates like HTTP handlers.
type LikeHandler struct {
	likeService *services.LikeService
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
	}
}

// LikeRequest is shared by like and unlike.
type LikeRequest struct {
	UserID uint64 `json:"userId" binding:"required"`
	PostID uint64 `json:"postId" binding:"required"`
}

// Like records a like for a (user, post) pair.
func (h *LikeHandler) Like(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "userId and postId are required")
		return
	}

	like, err := h.likeService.Like(req.UserID, req.PostID)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyLiked) {
			apierrors.Conflict(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"like":    dto.ToLikeDTO(*like),
	})
}

// Unlike removes a like. It succeeds even when no like existed.
func (h *LikeHandler) Unlike(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "userId and postId are required")
		return
	}

	if err := h.likeService.Unlike(req.UserID, req.PostID); err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
