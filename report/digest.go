// Package report renders archived and fetched posts as markdown and tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mgerb/subreddit-viewer/model"
)

const redditURL = "https://www.reddit.com"

// WriteDigest writes a numbered markdown digest of posts in the given order
func WriteDigest(w io.Writer, posts []model.RedditPost) error {
	var sb strings.Builder

	for index, p := range posts {
		permalink := redditURL + p.Permalink
		sb.WriteString("## " + strconv.Itoa(index+1) + ". [" + escape(p.Title) + "](" + permalink + ") - " + strconv.Itoa(p.Score) + "\n")
		sb.WriteString("#### [r/" + p.Subreddit + "](" + redditURL + "/r/" + p.Subreddit + ")")
		sb.WriteString(" - [u/" + p.Author + "](" + redditURL + "/u/" + p.Author + ") - ")
		sb.WriteString(strconv.Itoa(p.NumComments) + " Comments")
		if p.TopPosition > 0 {
			sb.WriteString(" - Top position achieved: " + strconv.Itoa(p.TopPosition))
		}
		sb.WriteString("\n\n")

		if p.URL == "" || p.URL == permalink {
			continue
		}

		// no image without a real thumbnail, and never for NSFW posts
		if !hasThumbnail(p.Thumbnail) || p.Over18 {
			sb.WriteString("<" + p.URL + ">\n\n")
			continue
		}
		sb.WriteString("<a href=\"" + p.URL + "\"><img src=\"" + p.Thumbnail + "\"></img></a>\n\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write digest: %w", err)
	}
	return nil
}

// reddit uses placeholder names instead of image URLs for these
func hasThumbnail(thumbnail string) bool {
	switch thumbnail {
	case "", "default", "self", "nsfw", "spoiler", "image":
		return false
	}
	return true
}

// brackets would end the link text early
func escape(s string) string {
	return strings.NewReplacer("[", "\\[", "]", "\\]").Replace(s)
}
