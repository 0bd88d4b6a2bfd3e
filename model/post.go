package model

import "time"

// Post - the view model rendered by the list screen
type Post struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Score       int    `json:"score"`
	NumComments int    `json:"num_comments"`
	CreatedUTC  int64  `json:"created_utc"`
	URL         string `json:"url"`

	// not displayed, used by the archive
	ID        string `json:"id,omitempty"`
	Permalink string `json:"permalink,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Over18    bool   `json:"over_18,omitempty"`
}

// Created returns the creation time of the post
func (p Post) Created() time.Time {
	return time.Unix(p.CreatedUTC, 0)
}

// ByScore sorts posts by score, highest first
type ByScore []RedditPost

func (s ByScore) Len() int {
	return len(s)
}

func (s ByScore) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

func (s ByScore) Less(i, j int) bool {
	return s[i].Score > s[j].Score
}
