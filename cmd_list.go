package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mgerb/subreddit-viewer/archive"
	"github.com/mgerb/subreddit-viewer/feed"
	"github.com/mgerb/subreddit-viewer/logging"
	"github.com/mgerb/subreddit-viewer/model"
	"github.com/mgerb/subreddit-viewer/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// listCmd prints listings without starting the interactive viewer
var listCmd = &cobra.Command{
	Use:   "list [new|hot|top]...",
	Short: "Print the posts of one or more tabs as a table",
	Args:  cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		tabs, err := parseTabs(args, cfg.Tab())
		if err != nil {
			return err
		}

		logger, err := logging.New(cfg.Logging, logging.Options{Verbose: verbose})
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		var fetcher feed.Fetcher = cfg.NewClient()
		if cfg.Archive.Enabled {
			store, err := openArchive(cfg)
			if err != nil {
				return err
			}
			defer store.Close()
			fetcher = archive.NewRecorder(fetcher, store, logger)
		}

		listings, err := fetchTabs(cmd.Context(), fetcher, tabs)
		if err != nil {
			logger.Error("Error fetching posts", zap.Error(err))
			return err
		}

		now := time.Now()
		for i, tab := range tabs {
			if i > 0 {
				fmt.Fprintln(os.Stdout)
			}
			report.WriteListing(os.Stdout, tab, listings[i], now)
		}
		return nil
	},
}

func parseTabs(args []string, def model.Tab) ([]model.Tab, error) {
	if len(args) == 0 {
		return []model.Tab{def}, nil
	}
	tabs := make([]model.Tab, 0, len(args))
	for _, a := range args {
		tab, err := model.ParseTab(a)
		if err != nil {
			return nil, err
		}
		tabs = append(tabs, tab)
	}
	return tabs, nil
}

// fetchTabs fetches every tab concurrently; results are in tab order
func fetchTabs(ctx context.Context, fetcher feed.Fetcher, tabs []model.Tab) ([][]model.Post, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	listings := make([][]model.Post, len(tabs))

	g, ctx := errgroup.WithContext(ctx)
	for i, tab := range tabs {
		i, tab := i, tab
		g.Go(func() error {
			posts, err := fetcher.Fetch(ctx, tab)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", tab, err)
			}
			listings[i] = posts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return listings, nil
}
