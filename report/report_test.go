package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mgerb/subreddit-viewer/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archived() []model.RedditPost {
	return []model.RedditPost{
		{ID: "a", Subreddit: "pics", Author: "ann", Title: "Lake [OC]", Score: 900, NumComments: 12, Permalink: "/r/pics/comments/a/lake/", URL: "https://i.redd.it/a.jpg", TopPosition: 1},
		{ID: "b", Subreddit: "pics", Author: "bob", Title: "Dog", Score: 400, NumComments: 3, Permalink: "/r/pics/comments/b/dog/", TopPosition: 4},
		{ID: "c", Subreddit: "pics", Author: "ann", Title: "Hill", Score: 50, Permalink: "/r/pics/comments/c/hill/"},
	}
}

func TestWriteDigest(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDigest(&buf, archived()))
	out := buf.String()

	assert.Contains(t, out, "## 1. [Lake \\[OC\\]](https://www.reddit.com/r/pics/comments/a/lake/) - 900\n")
	assert.Contains(t, out, "[u/ann](https://www.reddit.com/u/ann) - 12 Comments - Top position achieved: 1")
	assert.Contains(t, out, "<https://i.redd.it/a.jpg>")
	assert.Contains(t, out, "## 3. [Hill]")
	assert.NotContains(t, out, "Top position achieved: 0")
}

func TestWriteDigestThumbnails(t *testing.T) {
	posts := []model.RedditPost{
		{Title: "pic", Permalink: "/r/pics/comments/p/pic/", URL: "https://i.redd.it/p.jpg", Thumbnail: "https://b.thumbs.redditmedia.com/p.jpg"},
		{Title: "nsfw", Permalink: "/r/pics/comments/n/nsfw/", URL: "https://i.redd.it/n.jpg", Thumbnail: "https://b.thumbs.redditmedia.com/n.jpg", Over18: true},
		{Title: "text", Permalink: "/r/pics/comments/s/text/", URL: "https://example.com/s", Thumbnail: "self"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDigest(&buf, posts))
	out := buf.String()

	assert.Contains(t, out, `<a href="https://i.redd.it/p.jpg"><img src="https://b.thumbs.redditmedia.com/p.jpg"></img></a>`)
	assert.NotContains(t, out, "b.thumbs.redditmedia.com/n.jpg")
	assert.Contains(t, out, "<https://i.redd.it/n.jpg>")
	assert.Contains(t, out, "<https://example.com/s>")
	assert.Equal(t, 1, strings.Count(out, "<img"))
}

func TestWriteStats(t *testing.T) {
	var buf bytes.Buffer
	WriteStats(&buf, archived())
	out := buf.String()

	assert.Contains(t, out, "AUTHOR")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	// ann has two posts and comes first, led by her best post
	assert.Contains(t, lines[2], "ann")
	assert.Contains(t, lines[2], "Lake")
	assert.Contains(t, lines[2], "900")
	assert.Contains(t, lines[3], "bob")
}

func TestWriteListing(t *testing.T) {
	now := time.Unix(1700007200, 0)
	posts := []model.Post{
		{Title: "Sunrise", Author: "early_bird", Score: 15230, NumComments: 312, CreatedUTC: 1700000000},
		{Title: "Fog", Author: "night_owl", CreatedUTC: 1700007200},
	}

	var buf bytes.Buffer
	WriteListing(&buf, model.TabTop, posts, now)
	out := buf.String()

	assert.Contains(t, out, "top")
	assert.Contains(t, out, "Sunrise")
	assert.Contains(t, out, "15230")
	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, "now")
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1 day ago", TimeAgo(now.Add(-24*time.Hour), now))
	assert.Equal(t, "3 minutes ago", TimeAgo(now.Add(-3*time.Minute), now))
}
