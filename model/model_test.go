package model

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTab(t *testing.T) {
	for _, in := range []string{"new", "HOT", " top "} {
		tab, err := ParseTab(in)
		require.NoError(t, err, in)
		assert.Contains(t, Tabs(), tab)
	}

	_, err := ParseTab("rising")
	assert.ErrorIs(t, err, ErrUnknownTab)
}

func TestTabsOrderAndSuffix(t *testing.T) {
	assert.Equal(t, []Tab{TabNew, TabHot, TabTop}, Tabs())
	assert.Equal(t, "top", TabTop.Suffix())
	assert.Equal(t, TabHot, DefaultTab)
}

func TestToPost(t *testing.T) {
	rp := RedditPost{
		ID:          "abc",
		Title:       "A cat",
		Author:      "someone",
		Score:       42,
		NumComments: 7,
		CreatedUTC:  1700000000.0,
		URL:         "https://i.redd.it/cat.jpg",
		Permalink:   "/r/pics/comments/abc/a_cat/",
		Thumbnail:   "https://b.thumbs.redditmedia.com/abc.jpg",
		Over18:      true,
	}

	p := rp.ToPost()
	assert.Equal(t, "A cat", p.Title)
	assert.Equal(t, "someone", p.Author)
	assert.Equal(t, 42, p.Score)
	assert.Equal(t, 7, p.NumComments)
	assert.Equal(t, int64(1700000000), p.CreatedUTC)
	assert.Equal(t, "https://i.redd.it/cat.jpg", p.URL)
	assert.Equal(t, int64(1700000000), p.Created().Unix())
	assert.Equal(t, "https://b.thumbs.redditmedia.com/abc.jpg", p.Thumbnail)
	assert.True(t, p.Over18)
}

func TestByScore(t *testing.T) {
	posts := []RedditPost{{ID: "a", Score: 1}, {ID: "b", Score: 30}, {ID: "c", Score: 5}}
	sort.Sort(ByScore(posts))

	assert.Equal(t, "b", posts[0].ID)
	assert.Equal(t, "c", posts[1].ID)
	assert.Equal(t, "a", posts[2].ID)
}
