package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"simplechat/internal/dto"
	apierrors "simplechat/internal/errors"
	"simplechat/internal/services"
)

// ReplyHandler coordinates reply HTTP handlers.
type ReplyHandler struct {
	replyService *services.ReplyService
}

// NewReplyHandler creates a new ReplyHandler.
func NewReplyHandler(replyService *services.ReplyService) *ReplyHandler {
	return &ReplyHandler{
		replyService: replyService,
	}
}

// CreateReply creates a reply under a post.
func (h *ReplyHandler) CreateReply(c *gin.Context) {
	type CreateReplyRequest struct {
		Content  string `json:"content" binding:"required"`
		AuthorID uint64 `json:"authorId" binding:"required"`
		PostID   uint64 `json:"postId" binding:"required"`
	}

	var req CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "content, authorId and postId are required")
		return
	}

	reply, err := h.replyService.CreateReply(services.CreateReplyInput{
		Content:  req.Content,
		AuthorID: req.AuthorID,
		PostID:   req.PostID,
	})
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToReplyDTO(*reply))
}

// ListReplies returns the visible replies for a post, oldest first.
func (h *ReplyHandler) ListReplies(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Query("postId"), 10, 64)
	if err != nil || postID == 0 {
		apierrors.BadRequest(c, "postId is required")
		return
	}

	replies, err := h.replyService.ListByPost(postID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToReplyDTOs(replies))
}
