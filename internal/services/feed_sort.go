package services

import (
	"sort"
	"time"

	"simplechat/internal/models"
)

// FeedSortMode selects the ordering of the post feed.
type FeedSortMode string

const (
	// FeedSortNew is the default: creation time, newest first.
	FeedSortNew FeedSortMode = "new"
	// FeedSortOld orders by creation time, oldest first.
	FeedSortOld FeedSortMode = "old"
	// FeedSortLikes orders by total like count, highest first.
	FeedSortLikes FeedSortMode = "likes"
	// FeedSortReplyNew orders by most recent reply, newest first. Posts
	// without replies sort last.
	FeedSortReplyNew FeedSortMode = "replyNew"
	// FeedSortReplyOld orders by earliest reply, oldest first. Posts
	// without replies sort last.
	FeedSortReplyOld FeedSortMode = "replyOld"
)

// ParseFeedSortMode maps a query parameter value to a sort mode, defaulting
// to newest-first for empty or unknown values.
func ParseFeedSortMode(value string) FeedSortMode {
	switch FeedSortMode(value) {
	case FeedSortOld, FeedSortLikes, FeedSortReplyNew, FeedSortReplyOld:
		return FeedSortMode(value)
	default:
		return FeedSortNew
	}
}

// maxTime is the sentinel reply key for posts with no replies under
// FeedSortReplyOld, pushing them past every real timestamp.
var maxTime = time.Unix(1<<62, 0)

// SortFeed reorders posts in place. The sort is stable, so posts that
// compare equal keep the store's newest-first order.
func SortFeed(posts []models.Post, mode FeedSortMode) {
	switch mode {
	case FeedSortLikes:
		sort.SliceStable(posts, func(i, j int) bool {
			return len(posts[i].Likes) > len(posts[j].Likes)
		})
	case FeedSortOld:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedAt.Before(posts[j].CreatedAt)
		})
	case FeedSortReplyNew:
		sort.SliceStable(posts, func(i, j int) bool {
			return latestReply(posts[i]).After(latestReply(posts[j]))
		})
	case FeedSortReplyOld:
		sort.SliceStable(posts, func(i, j int) bool {
			return earliestReply(posts[i]).Before(earliestReply(posts[j]))
		})
	default:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		})
	}
}

// latestReply returns the newest reply timestamp, or the zero time for
// posts with no replies so they sort last under FeedSortReplyNew.
func latestReply(post models.Post) time.Time {
	var latest time.Time
	for _, reply := range post.Replies {
		if reply.CreatedAt.After(latest) {
			latest = reply.CreatedAt
		}
	}
	return latest
}

// earliestReply returns the oldest reply timestamp, or the maximum sentinel
// for posts with no replies so they sort last under FeedSortReplyOld.
func earliestReply(post models.Post) time.Time {
	earliest := maxTime
	for _, reply := range post.Replies {
		if reply.CreatedAt.Before(earliest) {
			earliest = reply.CreatedAt
		}
	}
	return earliest
}
