package practice

import (
	"github.com/LuChatri/j-practice/internal/bank"
	sess "github.com/LuChatri/j-practice/internal/session"
)

// sessionStartedMsg is sent when the controller and its recorders are
// ready and the first question has been drawn.
type sessionStartedMsg struct {
	Controller *sess.Controller
	Question   bank.Question
	Err        error
}

// sessionEndMsg triggers the session end flow.
type sessionEndMsg struct{}
