package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"simplechat/internal/models"
)

func feedFixture() []models.Post {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return []models.Post{
		{
			ID:        1,
			CreatedAt: base.Add(2 * time.Hour),
			Likes:     []models.Like{{UserID: 1, PostID: 1}},
			Replies: []models.Reply{
				{ID: 1, PostID: 1, CreatedAt: base.Add(30 * time.Minute)},
				{ID: 2, PostID: 1, CreatedAt: base.Add(3 * time.Hour)},
			},
		},
		{
			ID:        2,
			CreatedAt: base.Add(time.Hour),
			Likes: []models.Like{
				{UserID: 1, PostID: 2},
				{UserID: 2, PostID: 2},
			},
			Replies: []models.Reply{
				{ID: 3, PostID: 2, CreatedAt: base.Add(time.Hour)},
			},
		},
		{
			ID:        3,
			CreatedAt: base,
		},
	}
}

func ids(posts []models.Post) []uint64 {
	out := make([]uint64, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestParseFeedSortMode(t *testing.T) {
	assert.Equal(t, FeedSortNew, ParseFeedSortMode(""))
	assert.Equal(t, FeedSortNew, ParseFeedSortMode("bogus"))
	assert.Equal(t, FeedSortLikes, ParseFeedSortMode("likes"))
	assert.Equal(t, FeedSortReplyNew, ParseFeedSortMode("replyNew"))
	assert.Equal(t, FeedSortReplyOld, ParseFeedSortMode("replyOld"))
	assert.Equal(t, FeedSortOld, ParseFeedSortMode("old"))
}

func TestSortFeed_CreationTime(t *testing.T) {
	posts := feedFixture()
	SortFeed(posts, FeedSortNew)
	assert.Equal(t, []uint64{1, 2, 3}, ids(posts))

	SortFeed(posts, FeedSortOld)
	assert.Equal(t, []uint64{3, 2, 1}, ids(posts))
}

func TestSortFeed_Likes(t *testing.T) {
	posts := feedFixture()
	SortFeed(posts, FeedSortLikes)
	assert.Equal(t, []uint64{2, 1, 3}, ids(posts))
}

func TestSortFeed_ReplyNew(t *testing.T) {
	posts := feedFixture()
	SortFeed(posts, FeedSortReplyNew)

	// Post 1 has the latest reply; the reply-less post 3 keys at the zero
	// timestamp and sorts last.
	assert.Equal(t, []uint64{1, 2, 3}, ids(posts))
}

func TestSortFeed_ReplyOld(t *testing.T) {
	posts := feedFixture()
	SortFeed(posts, FeedSortReplyOld)

	// Post 1 has the earliest reply; the reply-less post 3 keys at the
	// maximum sentinel and still sorts last.
	assert.Equal(t, []uint64{1, 2, 3}, ids(posts))
}

func TestSortFeed_StableOnTies(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	posts := []models.Post{
		{ID: 10, CreatedAt: base.Add(time.Hour)},
		{ID: 11, CreatedAt: base},
	}

	// Equal like counts keep the incoming newest-first order.
	SortFeed(posts, FeedSortLikes)
	assert.Equal(t, []uint64{10, 11}, ids(posts))
}
