package model

// RedditPost - one entry of a listing's data.children array
type RedditPost struct {
	Subreddit   string  `json:"subreddit"`
	ID          string  `json:"id"`
	Score       int     `json:"score"`
	Author      string  `json:"author"`
	Domain      string  `json:"domain"`
	Over18      bool    `json:"over_18"`
	Thumbnail   string  `json:"thumbnail"`
	Permalink   string  `json:"permalink"`
	URL         string  `json:"url"`
	Title       string  `json:"title"`
	CreatedUTC  float64 `json:"created_utc"`
	NumComments int     `json:"num_comments"`

	// extra fields
	TopPosition int `json:"top_position,omitempty"` // highest achieved position in a listing
}

// ToPost maps the wire entry to the view model
func (p RedditPost) ToPost() Post {
	return Post{
		ID:          p.ID,
		Title:       p.Title,
		Author:      p.Author,
		Score:       p.Score,
		NumComments: p.NumComments,
		CreatedUTC:  int64(p.CreatedUTC),
		URL:         p.URL,
		Permalink:   p.Permalink,
		Thumbnail:   p.Thumbnail,
		Over18:      p.Over18,
	}
}
