package ui

import (
	"fmt"
	"time"

	"github.com/mgerb/subreddit-viewer/model"
	"github.com/mgerb/subreddit-viewer/report"
)

// postItem adapts model.Post to list.DefaultItem
type postItem struct {
	post model.Post
	ago  string
}

func newPostItem(p model.Post, now time.Time) postItem {
	return postItem{post: p, ago: report.TimeAgo(p.Created(), now)}
}

func (i postItem) Title() string { return i.post.Title }
func (i postItem) Description() string {
	return fmt.Sprintf("%s · %s · Score: %d · %d comments", i.ago, i.post.Author, i.post.Score, i.post.NumComments)
}
func (i postItem) FilterValue() string { return i.post.Title + " " + i.post.Author }
