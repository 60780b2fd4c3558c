package bow

import "encoding/json"

type EventType int

const (
	EventPullStart EventType = iota
	EventPullChanged
	EventReleased
	EventPullEnd
)

func (t EventType) String() string {
	switch t {
	case EventPullStart:
		return "pull_start"
	case EventPullChanged:
		return "pull_changed"
	case EventReleased:
		return "released"
	case EventPullEnd:
		return "pull_end"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes EventType as a string.
func (t EventType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Event is published by a Pull on every state change.
// Level is the pull level for PullChanged and the pre-reset level for Released.
type Event struct {
	Type   EventType `json:"type"`
	Level  float64   `json:"level"`
	HandID string    `json:"hand_id,omitempty"`
}
