package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgerb/subreddit-viewer/feed"
	"github.com/mgerb/subreddit-viewer/model"
	"go.uber.org/zap"
)

const (
	refreshingText = "Refreshing posts..."
	emptyText      = "No posts found."
)

// SubredditScreen lists the posts of the active tab.
//
// Every fetch gets a sequence number. Only the result of the most recent
// fetch may replace the list or clear the refresh indicator; older results
// are dropped when they arrive.
type SubredditScreen struct {
	fetcher feed.Fetcher
	logger  *zap.Logger
	styles  Styles
	now     func() time.Time

	list    list.Model
	spinner spinner.Model

	activeTab  model.Tab
	posts      []model.Post
	refreshing bool
	seq        int

	width  int
	height int
}

// NewSubredditScreen returns a screen that starts by fetching tab.
func NewSubredditScreen(fetcher feed.Fetcher, logger *zap.Logger, styles Styles, tab model.Tab) SubredditScreen {
	l := list.New(nil, list.NewDefaultDelegate(), 80, 20)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return SubredditScreen{
		fetcher:    fetcher,
		logger:     logger,
		styles:     styles,
		now:        time.Now,
		list:       l,
		spinner:    sp,
		activeTab:  tab,
		refreshing: true,
		seq:        1,
	}
}

// Init fetches the starting tab.
func (m SubredditScreen) Init() tea.Cmd {
	return tea.Batch(m.fetch(m.seq, m.activeTab), m.spinner.Tick)
}

// ActiveTab is the selected sort order.
func (m SubredditScreen) ActiveTab() model.Tab { return m.activeTab }

// Posts is the currently displayed list.
func (m SubredditScreen) Posts() []model.Post { return m.posts }

// Refreshing reports whether the refresh indicator is shown.
func (m SubredditScreen) Refreshing() bool { return m.refreshing }

// SetSize fits the list below the tab row.
func (m *SubredditScreen) SetSize(w, h int) {
	m.width = w
	m.height = h
	listHeight := h - 2
	if listHeight < 1 {
		listHeight = 1
	}
	m.list.SetSize(w, listHeight)
}

// Update handles messages.
func (m SubredditScreen) Update(msg tea.Msg) (SubredditScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "1", "n":
			return m.selectTab(model.TabNew)
		case "2", "h":
			return m.selectTab(model.TabHot)
		case "3", "t":
			return m.selectTab(model.TabTop)
		case "tab":
			return m.selectTab(m.cycleTab(1))
		case "shift+tab":
			return m.selectTab(m.cycleTab(-1))
		case "r":
			return m.refresh()
		case "enter":
			if item, ok := m.list.SelectedItem().(postItem); ok {
				post := item.post
				return m, func() tea.Msg { return OpenPostMsg{Post: post} }
			}
			return m, nil
		}

	case postsLoadedMsg:
		if msg.seq != m.seq {
			m.logger.Debug("dropping superseded listing", zap.Stringer("tab", msg.tab), zap.Int("seq", msg.seq))
			return m, nil
		}
		m.refreshing = false
		m.posts = msg.posts
		return m, m.list.SetItems(m.items())

	case fetchFailedMsg:
		m.logger.Error("Error fetching posts", zap.Stringer("tab", msg.tab), zap.Error(msg.err))
		if msg.seq == m.seq {
			m.refreshing = false
		}
		return m, nil

	case spinner.TickMsg:
		if !m.refreshing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m SubredditScreen) cycleTab(step int) model.Tab {
	tabs := model.Tabs()
	for i, t := range tabs {
		if t == m.activeTab {
			return tabs[(i+step+len(tabs))%len(tabs)]
		}
	}
	return model.DefaultTab
}

// selecting the tab that is already active does not refetch
func (m SubredditScreen) selectTab(tab model.Tab) (SubredditScreen, tea.Cmd) {
	if tab == m.activeTab {
		return m, nil
	}
	m.activeTab = tab
	return m.refresh()
}

func (m SubredditScreen) refresh() (SubredditScreen, tea.Cmd) {
	m.seq++
	m.refreshing = true
	m.logger.Debug("fetching posts", zap.Stringer("tab", m.activeTab), zap.Int("seq", m.seq))
	return m, tea.Batch(m.fetch(m.seq, m.activeTab), m.spinner.Tick)
}

func (m SubredditScreen) fetch(seq int, tab model.Tab) tea.Cmd {
	fetcher := m.fetcher
	return func() tea.Msg {
		posts, err := fetcher.Fetch(context.Background(), tab)
		if err != nil {
			return fetchFailedMsg{seq: seq, tab: tab, err: err}
		}
		return postsLoadedMsg{seq: seq, tab: tab, posts: posts}
	}
}

func (m SubredditScreen) items() []list.Item {
	now := m.now()
	items := make([]list.Item, 0, len(m.posts))
	for _, p := range m.posts {
		items = append(items, newPostItem(p, now))
	}
	return items
}

// View renders the tab row followed by the list.
func (m SubredditScreen) View() string {
	var sb strings.Builder

	tabs := make([]string, 0, 3)
	for _, t := range model.Tabs() {
		style := m.styles.Tab
		if t == m.activeTab {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	sb.WriteString(strings.Join(tabs, " "))
	if m.refreshing {
		sb.WriteString("  " + m.spinner.View())
	}
	sb.WriteString("\n")

	if len(m.posts) == 0 {
		text := emptyText
		if m.refreshing {
			text = refreshingText
		}
		sb.WriteString(m.styles.Empty.Render(text))
		return sb.String()
	}

	sb.WriteString(m.list.View())
	return sb.String()
}
