package ui

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/statusdeck/statusdeck/internal/config"
	"github.com/statusdeck/statusdeck/internal/poller"
	"github.com/statusdeck/statusdeck/internal/status"
)

// redrawInterval bounds the redraw rate and how often the refresh timer is
// checked.
const redrawInterval = 100 * time.Millisecond

type batchMsg []status.Result

type tickMsg time.Time

type openedMsg struct {
	url string
	err error
}

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open status page"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "Q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the interactive session state: the current batch (sorted by
// service name), the selection into that sorted view, and the refresh timer.
// It is the only writer of this state; concurrent fetches deliver their
// finished batch as a single batchMsg.
type Model struct {
	cfg         *config.Config
	poller      *poller.Poller
	results     []status.Result
	selected    int
	lastRefresh time.Time
	refreshing  bool
	statusLine  string
	quitting    bool

	openURL func(url string) error
}

func New(cfg *config.Config) Model {
	return Model{
		cfg:     cfg,
		poller:  poller.New(cfg.Services, cfg.Timeout),
		openURL: browser.OpenURL,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), tick())
}

func (m Model) fetchCmd() tea.Cmd {
	p := m.poller
	return func() tea.Msg {
		return batchMsg(p.FetchAll(context.Background()))
	}
}

func tick() tea.Cmd {
	return tea.Tick(redrawInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case batchMsg:
		m.results = sortByName(msg)
		m.lastRefresh = time.Now()
		m.refreshing = false
		if m.selected >= len(m.results) {
			m.selected = 0
		}
		return m, nil

	case tickMsg:
		if !m.refreshing && time.Since(m.lastRefresh) >= m.cfg.Refresh {
			m.refreshing = true
			return m, tea.Batch(m.fetchCmd(), tick())
		}
		return m, tick()

	case openedMsg:
		if msg.err != nil {
			m.statusLine = fmt.Sprintf("Failed to open %s: %v", msg.url, msg.err)
		} else {
			m.statusLine = fmt.Sprintf("Opening %s...", msg.url)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if n := len(m.results); n > 0 {
			m.selected = (m.selected - 1 + n) % n
		}
		m.statusLine = ""

	case key.Matches(msg, keys.Down):
		if n := len(m.results); n > 0 {
			m.selected = (m.selected + 1) % n
		}
		m.statusLine = ""

	case key.Matches(msg, keys.Open):
		if m.selected >= 0 && m.selected < len(m.results) {
			return m, m.openCmd(m.results[m.selected].StatusPageURL)
		}
	}

	return m, nil
}

func (m Model) openCmd(url string) tea.Cmd {
	open := m.openURL
	return func() tea.Msg {
		return openedMsg{url: url, err: open(url)}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.results == nil {
		return dimStyle.Render("Fetching service status...") + "\n"
	}
	return renderDashboard(m.results, m.selected, m.lastRefresh, m.cfg.Refresh, m.refreshing, m.statusLine, true)
}

func sortByName(results []status.Result) []status.Result {
	out := make([]status.Result, len(results))
	copy(out, results)
	sort.Slice(out, func(i, j int) bool { return out[i].Service < out[j].Service })
	return out
}
