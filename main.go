package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgerb/subreddit-viewer/archive"
	"github.com/mgerb/subreddit-viewer/config"
	"github.com/mgerb/subreddit-viewer/feed"
	"github.com/mgerb/subreddit-viewer/logging"
	"github.com/mgerb/subreddit-viewer/model"
	"github.com/mgerb/subreddit-viewer/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// global flags
	configPath string
	subreddit  string
	tabName    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "subreddit-viewer",
	Short: "Browse a subreddit's new, hot and top posts in the terminal",
	Long: `subreddit-viewer lists the posts of a single subreddit feed and lets you
open a post's link in your browser.

Run without arguments to start the interactive viewer.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runViewer()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file")
	rootCmd.PersistentFlags().StringVarP(&subreddit, "subreddit", "s", "", "subreddit to browse (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&tabName, "tab", "t", "", "start tab: new, hot or top (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(listCmd, digestCmd, statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig applies the command line flags over the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if subreddit != "" {
		cfg.Subreddit = subreddit
	}
	if tabName != "" {
		if _, err := model.ParseTab(tabName); err != nil {
			return nil, err
		}
		cfg.DefaultTab = tabName
	}
	return cfg, cfg.Validate()
}

func runViewer() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, logging.Options{ToFile: true, Verbose: verbose})
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

	logger.Info("starting viewer",
		zap.String("subreddit", cfg.Subreddit),
		zap.Stringer("tab", cfg.Tab()),
		zap.Bool("archive", cfg.Archive.Enabled),
	)

	app := ui.NewApp(fetcher, ui.Options{
		Subreddit: cfg.Subreddit,
		Tab:       cfg.Tab(),
		Theme:     cfg.Theme,
		Logger:    logger,
	})

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}

func openArchive(cfg *config.Config) (*archive.Store, error) {
	if err := os.MkdirAll(dirOf(cfg.Archive.Path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return archive.Open(cfg.Archive.Path, cfg.Subreddit)
}
