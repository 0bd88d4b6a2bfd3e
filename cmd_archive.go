package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mgerb/subreddit-viewer/archive"
	"github.com/mgerb/subreddit-viewer/config"
	"github.com/mgerb/subreddit-viewer/report"
	"github.com/spf13/cobra"
)

var (
	digestDay string
	outPath   string
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Write a markdown digest of the posts archived for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := time.Parse(archive.DateFormat, digestDay); err != nil {
			return fmt.Errorf("invalid --day %q, want MM-DD-YYYY", digestDay)
		}

		return withArchive(func(store *archive.Store) error {
			posts, err := store.Day(digestDay)
			if err != nil {
				return err
			}
			return withOutput(func(w io.Writer) error {
				return report.WriteDigest(w, posts)
			})
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Write a markdown table of archived posts grouped by author",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withArchive(func(store *archive.Store) error {
			posts, err := store.All()
			if err != nil {
				return err
			}
			return withOutput(func(w io.Writer) error {
				report.WriteStats(w, posts)
				return nil
			})
		})
	},
}

func init() {
	digestCmd.Flags().StringVar(&digestDay, "day", archive.DayKey(time.Now().AddDate(0, 0, -1)), "day to digest (MM-DD-YYYY)")
	digestCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	statsCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
}

func withArchive(fn func(*archive.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfg.Archive.Path); err != nil {
		return fmt.Errorf("no archive at %s (enable archive in %s): %w", cfg.Archive.Path, config.DefaultPath(), err)
	}

	store, err := archive.Open(cfg.Archive.Path, cfg.Subreddit)
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(store)
}

func withOutput(fn func(io.Writer) error) error {
	if outPath == "" {
		return fn(os.Stdout)
	}

	if err := os.MkdirAll(dirOf(outPath), 0o755); err != nil {
		return err
	}
	file, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := fn(file); err != nil {
		return err
	}
	return file.Sync()
}

func dirOf(path string) string {
	return filepath.Dir(path)
}
