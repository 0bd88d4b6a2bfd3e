package archive

import (
	"context"
	"time"

	"github.com/mgerb/subreddit-viewer/feed"
	"github.com/mgerb/subreddit-viewer/model"
	"go.uber.org/zap"
)

// Recorder is a feed.Fetcher that archives every successful listing.
// Archive failures are logged and never change the fetch result.
type Recorder struct {
	next   feed.Fetcher
	store  *Store
	logger *zap.Logger
	now    func() time.Time
}

// NewRecorder wraps next so its results are recorded in store.
func NewRecorder(next feed.Fetcher, store *Store, logger *zap.Logger) *Recorder {
	return &Recorder{next: next, store: store, logger: logger, now: time.Now}
}

// Fetch implements feed.Fetcher.
func (r *Recorder) Fetch(ctx context.Context, tab model.Tab) ([]model.Post, error) {
	posts, err := r.next.Fetch(ctx, tab)
	if err != nil {
		return nil, err
	}

	if err := r.store.Record(r.now(), tab, posts); err != nil {
		r.logger.Warn("failed to archive posts", zap.Stringer("tab", tab), zap.Error(err))
	} else {
		r.logger.Debug("archived posts", zap.Stringer("tab", tab), zap.Int("count", len(posts)))
	}

	return posts, nil
}
