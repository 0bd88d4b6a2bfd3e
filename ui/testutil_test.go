package ui

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgerb/subreddit-viewer/model"
	"go.uber.org/zap"
)

// fakeFetcher returns canned posts per tab and records the tabs requested.
type fakeFetcher struct {
	mu      sync.Mutex
	calls   []model.Tab
	results map[model.Tab][]model.Post
	err     error
}

func (f *fakeFetcher) Fetch(_ context.Context, tab model.Tab) ([]model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, tab)
	if f.err != nil {
		return nil, f.err
	}
	return f.results[tab], nil
}

func (f *fakeFetcher) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// runCmd executes cmd, expanding batches. Spinner ticks are dropped so the
// tests never wait on the animation.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, runCmd(c)...)
		}
		return out
	case spinner.TickMsg:
		return nil
	default:
		return []tea.Msg{msg}
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// feed delivers every message cmd produces back into the screen.
func feedScreen(m SubredditScreen, cmd tea.Cmd) SubredditScreen {
	for _, msg := range runCmd(cmd) {
		m, _ = m.Update(msg)
	}
	return m
}

func newTestScreen(f *fakeFetcher, logger *zap.Logger) SubredditScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := NewSubredditScreen(f, logger, DefaultStyles(), model.TabHot)
	m.SetSize(100, 40)
	return m
}

func samplePosts(prefix string, n int) []model.Post {
	posts := make([]model.Post, 0, n)
	for i := 0; i < n; i++ {
		posts = append(posts, model.Post{
			ID:          prefix + string(rune('a'+i)),
			Title:       prefix + " post " + string(rune('A'+i)),
			Author:      "author_" + string(rune('a'+i)),
			Score:       100 * (i + 1),
			NumComments: 10 * (i + 1),
			CreatedUTC:  1700000000,
			URL:         "https://example.com/" + prefix + "/" + string(rune('a'+i)) + "?ref=x&y=1",
		})
	}
	return posts
}
