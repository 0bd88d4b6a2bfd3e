// Package archive keeps every post seen in a listing, bucketed per day, in a
// bolt database. For each post it remembers the highest score and the best
// position it reached.
package archive

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/boltdb/bolt"
	"github.com/mgerb/subreddit-viewer/model"
)

const DateFormat = "01-02-2006"

var (
	// DailyBucket holds one nested bucket per day, keyed by DateFormat
	DailyBucket = []byte("daily_bucket")
)

// Store is a bolt-backed post archive.
type Store struct {
	db        *bolt.DB
	subreddit string
}

// Open opens (or creates) the archive at path.
func Open(path, subreddit string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	return &Store{db: db, subreddit: subreddit}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DayKey returns the bucket name for the day containing t
func DayKey(t time.Time) string {
	return t.Format(DateFormat)
}

// Record stores posts of tab in the bucket for day. posts must be in listing
// order. Only the hot listing ranks posts: its index becomes the post's
// position. Other tabs store the post and its best score but leave the
// position alone. Posts already stored for the previous day are skipped.
func (s *Store) Record(day time.Time, tab model.Tab, posts []model.Post) error {
	ranked := tab == model.TabHot

	today := []byte(DayKey(day))
	yesterdayKey := []byte(DayKey(day.AddDate(0, 0, -1)))

	return s.db.Update(func(tx *bolt.Tx) error {
		daily, err := tx.CreateBucketIfNotExists(DailyBucket)
		if err != nil {
			return err
		}

		bucket, err := daily.CreateBucketIfNotExists(today)
		if err != nil {
			return err
		}

		yesterday := daily.Bucket(yesterdayKey)

		for index, p := range posts {
			if p.ID == "" {
				continue
			}
			if yesterday != nil && yesterday.Get([]byte(p.ID)) != nil {
				continue
			}

			post := s.toRedditPost(p)
			if ranked {
				post.TopPosition = index + 1
			}

			if stored := bucket.Get([]byte(p.ID)); stored != nil {
				storedPost := model.RedditPost{}
				if err := json.Unmarshal(stored, &storedPost); err != nil {
					return fmt.Errorf("decode stored post %s: %w", p.ID, err)
				}

				// only keep the highest score a post achieves
				if storedPost.Score > post.Score {
					post.Score = storedPost.Score
				}

				// and the best position; 0 means never ranked
				if storedPost.TopPosition > 0 && (post.TopPosition == 0 || storedPost.TopPosition < post.TopPosition) {
					post.TopPosition = storedPost.TopPosition
				}
			}

			value, err := json.Marshal(post)
			if err != nil {
				return err
			}

			if err := bucket.Put([]byte(p.ID), value); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *Store) toRedditPost(p model.Post) model.RedditPost {
	return model.RedditPost{
		Subreddit:   s.subreddit,
		ID:          p.ID,
		Score:       p.Score,
		Author:      p.Author,
		Over18:      p.Over18,
		Thumbnail:   p.Thumbnail,
		Permalink:   p.Permalink,
		URL:         p.URL,
		Title:       p.Title,
		CreatedUTC:  float64(p.CreatedUTC),
		NumComments: p.NumComments,
	}
}

// Day returns the posts stored for day, highest score first. A day with no
// bucket yields an empty slice.
func (s *Store) Day(day string) ([]model.RedditPost, error) {
	posts := []model.RedditPost{}

	err := s.db.View(func(tx *bolt.Tx) error {
		daily := tx.Bucket(DailyBucket)
		if daily == nil {
			return nil
		}
		b := daily.Bucket([]byte(day))
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			return appendPost(&posts, v)
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Stable(model.ByScore(posts))
	return posts, nil
}

// All returns every stored post across all days, highest score first.
func (s *Store) All() ([]model.RedditPost, error) {
	posts := []model.RedditPost{}

	err := s.db.View(func(tx *bolt.Tx) error {
		daily := tx.Bucket(DailyBucket)
		if daily == nil {
			return nil
		}
		return daily.ForEach(func(key, _ []byte) error {
			b := daily.Bucket(key)
			if b == nil {
				return nil
			}
			return b.ForEach(func(_, v []byte) error {
				return appendPost(&posts, v)
			})
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Stable(model.ByScore(posts))
	return posts, nil
}

// Days returns the stored day keys in bolt key order.
func (s *Store) Days() ([]string, error) {
	days := []string{}

	err := s.db.View(func(tx *bolt.Tx) error {
		daily := tx.Bucket(DailyBucket)
		if daily == nil {
			return nil
		}
		return daily.ForEach(func(key, _ []byte) error {
			days = append(days, string(key))
			return nil
		})
	})

	return days, err
}

// values returned by bolt are only valid inside the transaction; Unmarshal copies
func appendPost(posts *[]model.RedditPost, v []byte) error {
	var post model.RedditPost
	if err := json.Unmarshal(v, &post); err != nil {
		return err
	}
	*posts = append(*posts, post)
	return nil
}
