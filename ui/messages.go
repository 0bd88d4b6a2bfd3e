package ui

import "github.com/mgerb/subreddit-viewer/model"

// OpenPostMsg asks the app to show the detail screen for Post.
type OpenPostMsg struct {
	Post model.Post
}

// BackMsg returns from the detail screen to the list.
type BackMsg struct{}

// postsLoadedMsg carries the result of fetch number seq.
type postsLoadedMsg struct {
	seq   int
	tab   model.Tab
	posts []model.Post
}

type fetchFailedMsg struct {
	seq int
	tab model.Tab
	err error
}

type browserOpenedMsg struct {
	url string
	err error
}
