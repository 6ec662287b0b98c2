package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/LuChatri/j-practice/internal/router"
	"github.com/LuChatri/j-practice/internal/screen"
	"github.com/LuChatri/j-practice/internal/store"
	"github.com/LuChatri/j-practice/internal/ui/layout"
	"github.com/LuChatri/j-practice/internal/ui/theme"
)

type historyLoadedMsg struct {
	Totals     store.Totals
	Categories []store.CategoryStat
	Err        error
}

// HistoryScreen displays lifetime practice stats from the history
// store.
type HistoryScreen struct {
	repo       store.OutcomeRepo
	totals     store.Totals
	categories []store.CategoryStat
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.OutcomeRepo) *HistoryScreen {
	return &HistoryScreen{repo: repo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		totals, err := s.repo.Totals(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		categories, err := s.repo.CategoryStats(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Totals: totals, Categories: categories}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.totals = msg.Totals
			s.categories = msg.Categories
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if s.totals.Attempted == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No outcomes yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	var accuracy float64
	if s.totals.Attempted > 0 {
		accuracy = float64(s.totals.Correct) / float64(s.totals.Attempted) * 100
	}
	totalsLine := fmt.Sprintf("%d sessions    %d questions    %d correct    %.0f%% accuracy",
		s.totals.Sessions, s.totals.Attempted, s.totals.Correct, accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render(totalsLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(fmt.Sprintf("Incorrect: %d    Skipped: %d", s.totals.Incorrect, s.totals.Skipped)))
	b.WriteString("\n\n")

	for _, cs := range s.categories {
		var catAccuracy float64
		if cs.Attempted > 0 {
			catAccuracy = float64(cs.Correct) / float64(cs.Attempted) * 100
		}
		line := fmt.Sprintf("  %-24s %4d attempted   %4d correct   %3.0f%%",
			cs.Category, cs.Attempted, cs.Correct, catAccuracy)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
