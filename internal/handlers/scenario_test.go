package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"simplechat/internal/database"
	"simplechat/internal/dto"
	"simplechat/internal/models"
	"simplechat/internal/repository"
	"simplechat/internal/services"
)

// newTestServer wires the full handler graph against an in-memory store,
// mirroring the wiring in cmd/server.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Reply{},
		&models.Like{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	replyRepo := repository.NewReplyRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	accountHandler := NewAccountHandler(services.NewAccountService(userRepo))
	postHandler := NewPostHandler(services.NewPostService(postRepo))
	replyHandler := NewReplyHandler(services.NewReplyService(replyRepo))
	likeHandler := NewLikeHandler(services.NewLikeService(likeRepo))
	searchHandler := NewSearchHandler(services.NewSearchService(postRepo, replyRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", accountHandler.Register)
	r.POST("/login", accountHandler.Login)
	r.GET("/posts", postHandler.ListPosts)
	r.POST("/posts", postHandler.CreatePost)
	r.DELETE("/posts/:id", postHandler.DeletePost)
	r.POST("/like", likeHandler.Like)
	r.DELETE("/like", likeHandler.Unlike)
	r.POST("/reply", replyHandler.CreateReply)
	r.GET("/reply", replyHandler.ListReplies)
	r.GET("/search", searchHandler.Search)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string, out any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestScenario_RegisterPostLikeReplyUnlike(t *testing.T) {
	r := newTestServer(t)

	// Register user A.
	w := postJSON(t, r, "/register", map[string]string{
		"username": "userA",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var userA dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &userA))

	// Create post P with content "first".
	w = postJSON(t, r, "/posts", map[string]any{
		"content":  "first",
		"authorId": userA.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var postP dto.PostDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &postP))

	// Like P by A.
	w = postJSON(t, r, "/like", map[string]any{
		"userId": userA.ID,
		"postId": postP.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// The feed shows P with one like and author A.
	var feed []dto.FeedPostDTO
	getJSON(t, r, "/posts", &feed)
	require.Len(t, feed, 1)
	require.Equal(t, postP.ID, feed[0].ID)
	require.Equal(t, "userA", feed[0].Author.Username)
	require.Len(t, feed[0].Likes, 1)

	// Reply to P by A with "nice".
	w = postJSON(t, r, "/reply", map[string]any{
		"content":  "nice",
		"authorId": userA.ID,
		"postId":   postP.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var replies []dto.ReplyDTO
	getJSON(t, r, fmt.Sprintf("/reply?postId=%d", postP.ID), &replies)
	require.Len(t, replies, 1)
	require.Equal(t, "nice", replies[0].Content)

	// Unlike P by A; the feed now shows zero likes.
	w = deleteJSON(t, r, "/like", map[string]any{
		"userId": userA.ID,
		"postId": postP.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	getJSON(t, r, "/posts", &feed)
	require.Len(t, feed, 1)
	require.Empty(t, feed[0].Likes)
	require.Len(t, feed[0].Replies, 1)
}

func TestScenario_SearchRoundTripWithSoftDelete(t *testing.T) {
	r := newTestServer(t)

	w := postJSON(t, r, "/register", map[string]string{
		"username": "author",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var author dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &author))

	w = postJSON(t, r, "/posts", map[string]any{
		"content":  "hello world",
		"authorId": author.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var post dto.PostDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))

	// Different case still matches.
	var response dto.SearchResponse
	getJSON(t, r, "/search?q=HELLO", &response)
	require.Len(t, response.Results, 1)
	require.Equal(t, post.ID, response.Results[0].ID)

	// After soft-deleting the post the same search finds nothing.
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/posts/%d", post.ID), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	getJSON(t, r, "/search?q=HELLO", &response)
	require.Empty(t, response.Results)
}
