package main

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mgerb/subreddit-viewer/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tabFetcher struct {
	mu    sync.Mutex
	calls []model.Tab
	fail  model.Tab
}

func (f *tabFetcher) Fetch(_ context.Context, tab model.Tab) ([]model.Post, error) {
	f.mu.Lock()
	f.calls = append(f.calls, tab)
	f.mu.Unlock()
	if tab == f.fail {
		return nil, errors.New("unavailable")
	}
	return []model.Post{{Title: tab.String()}}, nil
}

func TestParseTabs(t *testing.T) {
	tabs, err := parseTabs(nil, model.TabTop)
	require.NoError(t, err)
	assert.Equal(t, []model.Tab{model.TabTop}, tabs)

	tabs, err = parseTabs([]string{"new", "HOT"}, model.TabTop)
	require.NoError(t, err)
	assert.Equal(t, []model.Tab{model.TabNew, model.TabHot}, tabs)

	_, err = parseTabs([]string{"rising"}, model.TabTop)
	assert.ErrorIs(t, err, model.ErrUnknownTab)
}

func TestFetchTabsKeepsOrder(t *testing.T) {
	f := &tabFetcher{}
	listings, err := fetchTabs(context.Background(), f, model.Tabs())
	require.NoError(t, err)

	require.Len(t, listings, 3)
	assert.Equal(t, "new", listings[0][0].Title)
	assert.Equal(t, "hot", listings[1][0].Title)
	assert.Equal(t, "top", listings[2][0].Title)
	assert.ElementsMatch(t, model.Tabs(), f.calls)
}

func TestFetchTabsError(t *testing.T) {
	f := &tabFetcher{fail: model.TabHot}
	_, err := fetchTabs(context.Background(), f, model.Tabs())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch hot")
}
