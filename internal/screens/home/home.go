package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/LuChatri/j-practice/internal/bank"
	"github.com/LuChatri/j-practice/internal/router"
	"github.com/LuChatri/j-practice/internal/screen"
	"github.com/LuChatri/j-practice/internal/screens/history"
	"github.com/LuChatri/j-practice/internal/screens/practice"
	"github.com/LuChatri/j-practice/internal/store"
	"github.com/LuChatri/j-practice/internal/ui/components"
	"github.com/LuChatri/j-practice/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu          components.Menu
	questionCount int
	categoryCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. repo may be nil when the history
// store is unavailable; History is then disabled.
func New(b *bank.Bank, repo store.OutcomeRepo, logPath string, weighted bool) *HomeScreen {
	items := []components.MenuItem{
		{Label: "PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: practice.New(b, repo, logPath, weighted),
				}
			}
		}},
		{Label: "HISTORY", Disabled: repo == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(repo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:          components.NewMenu(items),
		questionCount: b.Len(),
		categoryCount: len(b.Categories()),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("J-PRACTICE"))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%d questions across %d categories",
			h.questionCount, h.categoryCount)))

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	return "\n\n" + strings.Join(sections, "\n\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}
