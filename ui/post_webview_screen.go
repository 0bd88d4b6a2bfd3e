package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/mgerb/subreddit-viewer/model"
	"github.com/mgerb/subreddit-viewer/report"
	"go.uber.org/zap"
)

// PostWebViewScreen shows one post's link and hands it to the system browser.
type PostWebViewScreen struct {
	post     model.Post
	viewport viewport.Model
	renderer *glamour.TermRenderer
	styles   Styles
	logger   *zap.Logger
	status   string
}

// NewPostWebViewScreen renders post into a w x h viewport.
func NewPostWebViewScreen(post model.Post, renderer *glamour.TermRenderer, styles Styles, logger *zap.Logger, w, h int) PostWebViewScreen {
	m := PostWebViewScreen{
		post:     post,
		viewport: viewport.New(w, h),
		renderer: renderer,
		styles:   styles,
		logger:   logger,
	}
	m.SetSize(w, h)
	return m
}

// URL is the link the screen was opened with.
func (m PostWebViewScreen) URL() string { return m.post.URL }

// SetSize resizes the viewport, keeping a line for the status.
func (m *PostWebViewScreen) SetSize(w, h int) {
	m.viewport.Width = w
	m.viewport.Height = h - 1
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	m.viewport.SetContent(m.render(time.Now()))
}

func (m PostWebViewScreen) markdown(now time.Time) string {
	p := m.post
	var sb strings.Builder
	sb.WriteString("# " + p.Title + "\n\n")
	sb.WriteString(fmt.Sprintf("u/%s · Score: %d · %d comments · %s\n\n", p.Author, p.Score, p.NumComments, report.TimeAgo(p.Created(), now)))
	sb.WriteString(p.URL + "\n")
	return sb.String()
}

func (m PostWebViewScreen) render(now time.Time) string {
	md := m.markdown(now)
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		m.logger.Warn("failed to render post", zap.Error(err))
		return md
	}
	return out
}

// Update handles messages.
func (m PostWebViewScreen) Update(msg tea.Msg) (PostWebViewScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace", "q":
			return m, func() tea.Msg { return BackMsg{} }
		case "o", "enter":
			u := m.post.URL
			m.status = "Opening browser..."
			return m, func() tea.Msg {
				return browserOpenedMsg{url: u, err: openURL(u)}
			}
		}

	case browserOpenedMsg:
		if msg.err != nil {
			m.logger.Error("failed to open browser", zap.String("url", msg.url), zap.Error(msg.err))
			m.status = "Could not open browser"
		} else {
			m.status = "Opened in browser"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the post and a status line.
func (m PostWebViewScreen) View() string {
	status := m.styles.Help.Render("o: open in browser · esc: back")
	if m.status != "" {
		status = m.styles.Status.Render(m.status)
	}
	return m.viewport.View() + "\n" + status
}
