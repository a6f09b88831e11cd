package session

import "strings"

// Role identifies the author of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in a conversation. Immutable once appended.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Mode is the persona configuration fixed at session start.
type Mode string

const (
	ModeClosure    Mode = "closure"
	ModeAlternate  Mode = "alternate"
	ModeSupportive Mode = "supportive"
	ModeRebound    Mode = "rebound"
)

// DefaultMode applies when a start request omits the mode.
const DefaultMode = ModeClosure

// NormalizeMode maps a client-supplied mode string onto the canonical enum.
// The legacy "alt_future" spelling from older app builds maps to alternate.
func NormalizeMode(input string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return DefaultMode, true
	case "closure":
		return ModeClosure, true
	case "alternate", "alt_future":
		return ModeAlternate, true
	case "supportive":
		return ModeSupportive, true
	case "rebound":
		return ModeRebound, true
	}
	return "", false
}

// Session is one ongoing conversation. Values handed out by the store are
// snapshots: the history slice is a copy and safe to read without locking.
type Session struct {
	ID      string    `json:"id"`
	Mode    Mode      `json:"mode"`
	Summary string    `json:"summary,omitempty"`
	History []Message `json:"history"`
}

// UserUtterances extracts the user-authored message contents in order.
func (s Session) UserUtterances() []string {
	utterances := make([]string, 0, len(s.History))
	for _, msg := range s.History {
		if msg.Role == RoleUser {
			utterances = append(utterances, msg.Content)
		}
	}
	return utterances
}

// Recent returns the trailing window of at most n messages.
func (s Session) Recent(n int) []Message {
	if n <= 0 || len(s.History) <= n {
		return s.History
	}
	return s.History[len(s.History)-n:]
}
