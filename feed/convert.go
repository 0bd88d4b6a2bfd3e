package feed

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mgerb/subreddit-viewer/model"
	"github.com/tidwall/gjson"
)

// ErrMalformedListing means the body was not a listing with a data.children array.
var ErrMalformedListing = errors.New("malformed listing")

// ConvertRedditPosts converts a listing response to its wire entries
func ConvertRedditPosts(listing string) ([]model.RedditPost, error) {
	if !gjson.Valid(listing) {
		return nil, ErrMalformedListing
	}

	children := gjson.Get(listing, "data.children")
	if !children.IsArray() {
		return nil, ErrMalformedListing
	}

	posts := []model.RedditPost{}
	for i, p := range children.Array() {
		tempPost := model.RedditPost{}

		data := p.Get("data")
		if !data.IsObject() {
			return nil, fmt.Errorf("entry %d: %w", i, ErrMalformedListing)
		}
		if err := json.Unmarshal([]byte(data.Raw), &tempPost); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		posts = append(posts, tempPost)
	}

	return posts, nil
}

// ConvertPosts converts a listing response to view models, keeping server order
func ConvertPosts(listing string) ([]model.Post, error) {
	redditPosts, err := ConvertRedditPosts(listing)
	if err != nil {
		return nil, err
	}

	posts := make([]model.Post, 0, len(redditPosts))
	for _, p := range redditPosts {
		posts = append(posts, p.ToPost())
	}
	return posts, nil
}
