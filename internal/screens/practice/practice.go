package practice

import (
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/LuChatri/j-practice/internal/bank"
	"github.com/LuChatri/j-practice/internal/outcomelog"
	"github.com/LuChatri/j-practice/internal/router"
	"github.com/LuChatri/j-practice/internal/screen"
	sess "github.com/LuChatri/j-practice/internal/session"
	"github.com/LuChatri/j-practice/internal/screens/summary"
	"github.com/LuChatri/j-practice/internal/store"
	"github.com/LuChatri/j-practice/internal/ui/components"
	"github.com/LuChatri/j-practice/internal/ui/layout"
)

// phase tracks where the current question is in its cycle:
// presented, buzzed in, or revealed (after a buzz or a skip).
type phase int

const (
	phasePresented phase = iota // prompt shown, awaiting buzz or skip
	phaseBuzzed                 // typing a response
	phaseJudging                // answer revealed after buzz, self-judge
	phaseRevealed               // answer revealed after skip, continue
)

// PracticeScreen drives one practice session: it owns the session
// controller and walks each question through the buzz-in state
// machine, recording an outcome per question.
type PracticeScreen struct {
	bank     *bank.Bank
	repo     store.OutcomeRepo // nil disables history
	logPath  string
	weighted bool

	ctrl     *sess.Controller
	current  bank.Question
	phase    phase
	response string
	input    components.TextInput

	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen over b. Outcomes go to the CSV log at
// logPath and, when repo is non-nil, to the history store.
func New(b *bank.Bank, repo store.OutcomeRepo, logPath string, weighted bool) *PracticeScreen {
	return &PracticeScreen{
		bank:     b,
		repo:     repo,
		logPath:  logPath,
		weighted: weighted,
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return s.startSession()
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phaseBuzzed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Reveal answer"},
			{Key: "Esc", Description: "Quit"},
		}
	case phaseJudging:
		return []layout.KeyHint{
			{Key: "C", Description: "I was right"},
			{Key: "X", Description: "I was wrong"},
		}
	case phaseRevealed:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Buzz in"},
			{Key: "S", Description: "Skip"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.ctrl = msg.Controller
		s.current = msg.Question
		s.phase = phasePresented
		return s, nil

	case sessionEndMsg:
		return s.endSession()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to the input while typing a response.
	if s.phase == phaseBuzzed && !s.showingQuitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// startSession opens the outcome recorders, builds the controller, and
// draws the first question.
func (s *PracticeScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		logWriter, err := outcomelog.Open(s.logPath)
		if err != nil {
			return sessionStartedMsg{Err: err}
		}

		recorder := sess.MultiRecorder{logWriter}
		sessionID := uuid.New().String()
		if s.repo != nil {
			recorder = append(recorder, store.NewSessionRecorder(s.repo, sessionID))
		}

		ctrl := sess.New(s.bank, recorder, s.weighted, sessionID)
		q, err := ctrl.NextQuestion()
		if err != nil {
			ctrl.Close()
			return sessionStartedMsg{Err: err}
		}
		return sessionStartedMsg{Controller: ctrl, Question: q}
	}
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		if s.ctrl != nil {
			s.ctrl.Close()
			s.ctrl = nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.ctrl == nil {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
			return s, nil
		}
		return s, nil
	}

	switch s.phase {
	case phasePresented:
		switch key {
		case "enter", "b":
			s.phase = phaseBuzzed
			s.input = components.NewTextInput("Type your response...", 80)
			return s, s.input.Init()
		case "s":
			// Skip: log it, then show the answer before moving on.
			if err := s.ctrl.RecordOutcome(sess.OutcomeSkipped); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			s.phase = phaseRevealed
			return s, nil
		case "esc":
			s.showingQuitConfirm = true
			return s, nil
		}

	case phaseBuzzed:
		switch key {
		case "enter":
			s.response = s.input.Value()
			s.phase = phaseJudging
			return s, nil
		case "esc":
			s.showingQuitConfirm = true
			return s, nil
		default:
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}

	case phaseJudging:
		switch key {
		case "c", "y":
			return s.resolve(sess.OutcomeCorrect)
		case "x", "n", "i":
			return s.resolve(sess.OutcomeIncorrect)
		case "esc":
			s.showingQuitConfirm = true
			return s, nil
		}

	case phaseRevealed:
		// Outcome already logged on skip; any key continues.
		return s.advance()
	}

	return s, nil
}

// resolve records the self-judged outcome and advances.
func (s *PracticeScreen) resolve(o sess.Outcome) (screen.Screen, tea.Cmd) {
	if err := s.ctrl.RecordOutcome(o); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	return s.advance()
}

// advance draws the next question, refilling from a fresh category
// when the current one is exhausted.
func (s *PracticeScreen) advance() (screen.Screen, tea.Cmd) {
	q, err := s.ctrl.NextQuestion()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.current = q
	s.response = ""
	s.phase = phasePresented
	return s, nil
}

// endSession closes the controller, releasing the outcome log, and
// shows the summary.
func (s *PracticeScreen) endSession() (screen.Screen, tea.Cmd) {
	sum := s.ctrl.Summarize()
	if err := s.ctrl.Close(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.ctrl = nil

	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(sum)}
	}
}
