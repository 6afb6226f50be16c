package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"simplechat/internal/dto"
	apierrors "simplechat/internal/errors"
	"simplechat/internal/services"
)

// PostHandler coordinates post HTTP handlers.
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// CreatePost creates a new post.
func (h *PostHandler) CreatePost(c *gin.Context) {
	type CreatePostRequest struct {
		Content  string `json:"content" binding:"required"`
		AuthorID uint64 `json:"authorId" binding:"required"`
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "content and authorId are required")
		return
	}

	post, err := h.postService.CreatePost(services.CreatePostInput{
		Content:  req.Content,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTO(*post))
}

// DeletePost soft-deletes a post by ID. Ownership is not checked; the
// client is trusted.
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequest(c, "invalid post id")
		return
	}

	post, err := h.postService.SoftDelete(id)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post":    dto.ToPostDTO(*post),
	})
}

// ListPosts returns the visible post feed. This endpoint is fail-open: a
// store failure is logged and masked as an empty feed rather than surfaced,
// keeping the feed available.
func (h *PostHandler) ListPosts(c *gin.Context) {
	mode := services.ParseFeedSortMode(c.Query("sort"))

	posts, err := h.postService.ListFeed(mode)
	if err != nil {
		log.Printf("failed to list posts: %v", err)
		c.JSON(http.StatusOK, []dto.FeedPostDTO{})
		return
	}

	c.JSON(http.StatusOK, dto.ToFeedPostDTOs(posts))
}
