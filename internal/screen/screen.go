package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/LuChatri/j-practice/internal/ui/layout"
)

// Screen is one page of the application. The router shows exactly one
// screen at a time; switching screens drops the previous screen's
// state and constructs the new one.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
