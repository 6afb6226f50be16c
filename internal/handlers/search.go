package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplechat/internal/dto"
	apierrors "simplechat/internal/errors"
	"simplechat/internal/services"
)

// SearchHandler coordinates the search HTTP handler.
type SearchHandler struct {
	searchService *services.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// Search matches post and reply content against the q parameter. A blank or
// missing q returns an empty result set, not an error. Matching posts come
// first, then matching replies.
func (h *SearchHandler) Search(c *gin.Context) {
	posts, replies, err := h.searchService.Search(c.Query("q"))
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Results: dto.ToSearchResults(posts, replies),
	})
}
