package chat

import "sync"

// Role tags a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry of the transcript.
type Turn struct {
	ID      int    `json:"id"`
	Role    Role   `json:"role"`
	Text    string `json:"text"`
	Pending bool   `json:"pending,omitempty"`
}

// Transcript is the ordered, append-only list of turns of one page view.
// Only the text and pending marker of an existing turn can change.
type Transcript struct {
	mu    sync.RWMutex
	turns []Turn
}

// Append adds a turn and returns it with its id assigned.
func (t *Transcript) Append(role Role, text string, pending bool) Turn {
	t.mu.Lock()
	defer t.mu.Unlock()
	turn := Turn{ID: len(t.turns) + 1, Role: role, Text: text, Pending: pending}
	t.turns = append(t.turns, turn)
	return turn
}

// Settle replaces the text of turn id and clears its pending marker.
func (t *Transcript) Settle(id int, text string) (Turn, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id < 1 || id > len(t.turns) {
		return Turn{}, false
	}
	t.turns[id-1].Text = text
	t.turns[id-1].Pending = false
	return t.turns[id-1], true
}

// Turns returns a copy of all turns.
func (t *Transcript) Turns() []Turn {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len returns the number of turns.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.turns)
}

// Pending reports whether any assistant turn still awaits its response.
func (t *Transcript) Pending() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, turn := range t.turns {
		if turn.Pending {
			return true
		}
	}
	return false
}
