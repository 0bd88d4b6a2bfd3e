package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mgerb/subreddit-viewer/feed"
	"github.com/mgerb/subreddit-viewer/model"
	"go.uber.org/zap"
)

const (
	listTitle   = "Reddit Posts"
	detailTitle = "PostWebView"
)

// Options configures NewApp.
type Options struct {
	Subreddit string
	Tab       model.Tab
	Theme     string
	Logger    *zap.Logger
	// Renderer overrides the glamour renderer picked from Theme.
	Renderer *glamour.TermRenderer
}

// App is the two-screen navigation stack: the post list and, on top of it,
// the detail screen of the selected post.
type App struct {
	list     SubredditScreen
	detail   *PostWebViewScreen
	renderer *glamour.TermRenderer
	styles   Styles
	logger   *zap.Logger
	title    string

	width  int
	height int
}

// NewApp builds the app around fetcher.
func NewApp(fetcher feed.Fetcher, opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tab := opts.Tab
	if tab == "" {
		tab = model.DefaultTab
	}

	styles := NewStyles(ThemeByName(opts.Theme))

	renderer := opts.Renderer
	if renderer == nil {
		style := "dark"
		if !styles.Theme.IsDark {
			style = "light"
		}
		var err error
		renderer, err = glamour.NewTermRenderer(
			glamour.WithStylePath(style),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			logger.Warn("markdown renderer unavailable", zap.Error(err))
			renderer = nil
		}
	}

	title := listTitle
	if opts.Subreddit != "" {
		title = listTitle + " · r/" + opts.Subreddit
	}

	return App{
		list:     NewSubredditScreen(fetcher, logger, styles, tab),
		renderer: renderer,
		styles:   styles,
		logger:   logger,
		title:    title,
		width:    80,
		height:   24,
	}
}

// Init starts the first fetch.
func (a App) Init() tea.Cmd {
	return a.list.Init()
}

// Update routes messages to the visible screen. Fetch results always go to
// the list, even while the detail screen is shown.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.detail == nil && msg.String() == "q" {
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.list.SetSize(msg.Width, a.bodyHeight())
		if a.detail != nil {
			a.detail.SetSize(msg.Width, a.bodyHeight())
		}
		return a, nil

	case OpenPostMsg:
		a.logger.Debug("opening post", zap.String("url", msg.Post.URL))
		detail := NewPostWebViewScreen(msg.Post, a.renderer, a.styles, a.logger, a.width, a.bodyHeight())
		a.detail = &detail
		return a, nil

	case BackMsg:
		a.detail = nil
		return a, nil

	case postsLoadedMsg, fetchFailedMsg, spinner.TickMsg:
		a.list, cmd = a.list.Update(msg)
		return a, cmd
	}

	if a.detail != nil {
		detail, cmd := a.detail.Update(msg)
		a.detail = &detail
		return a, cmd
	}

	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

// header and its margin
func (a App) bodyHeight() int {
	return a.height - 2
}

// Screen returns the title of the visible screen.
func (a App) Screen() string {
	if a.detail != nil {
		return detailTitle
	}
	return listTitle
}

// View renders the centered header over the visible screen.
func (a App) View() string {
	title, body := a.title, a.list.View()
	if a.detail != nil {
		title, body = detailTitle, a.detail.View()
	}
	header := a.styles.Header.Render(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}
