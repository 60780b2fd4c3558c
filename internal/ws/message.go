package ws

import (
	"encoding/json"

	"github.com/ghosthunt/ghosthunt-server/internal/geom"
)

// Message represents a WebSocket message with type-based routing.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Message types - Session
const (
	TypeStartHunt = "start_hunt"
	TypeRestart   = "restart"
	TypeLeave     = "leave"
	TypeHuntInfo  = "hunt_info"
)

// Message types - Input
const (
	TypeGrabBow       = "grab_bow"
	TypeDropBow       = "drop_bow"
	TypeGrabString    = "grab_string"
	TypeHandMove      = "hand_move"
	TypeReleaseString = "release_string"
	TypeHeadMove      = "head_move"
)

// Message types - Gameplay
const (
	TypeGameState     = "game_state"
	TypePullChanged   = "pull_changed"
	TypeArrowReleased = "arrow_released"
	TypeHaptic        = "haptic"
	TypeLevelUp       = "level_up"
	TypeGameOver      = "game_over"
)

// Message types - System
const (
	TypeError = "error"
)

// StartHuntRequest opens a new hunt for the sending client.
type StartHuntRequest struct {
	PlayerName string `json:"player_name"`
}

// GrabStringRequest names the hand drawing the string.
type GrabStringRequest struct {
	Hand    string `json:"hand"`
	Haptics bool   `json:"haptics"`
}

// HandMoveRequest carries the drawing hand in the bow's frame plus the bow pose in world space.
type HandMoveRequest struct {
	Hand   geom.Vec3 `json:"hand"`
	BowPos geom.Vec3 `json:"bow_position"`
	BowAim geom.Vec3 `json:"bow_forward"`
}

// HeadMoveRequest carries the player's head position.
type HeadMoveRequest struct {
	Position geom.Vec3 `json:"position"`
}

// HuntInfo is sent when a hunt starts or restarts.
type HuntInfo struct {
	Code       string      `json:"code"`
	PlayerName string      `json:"player_name"`
	Highscore  int         `json:"highscore"`
	IntroDelay float64     `json:"intro_delay"`
	Bounds     geom.Bounds `json:"bounds"`
}

// PullChanged reports a new draw level.
type PullChanged struct {
	Level float64 `json:"level"`
}

// Haptic asks the client to vibrate a controller.
type Haptic struct {
	Hand      string  `json:"hand"`
	Intensity float64 `json:"intensity"`
	Duration  float64 `json:"duration"`
}

// LevelUp reports the new level.
type LevelUp struct {
	Level int `json:"level"`
}

// GameOver ends the hunt.
type GameOver struct {
	Score     int  `json:"score"`
	Highscore int  `json:"highscore"`
	NewRecord bool `json:"new_record"`
}

// ErrorMessage is sent when an error occurs.
type ErrorMessage struct {
	Message string `json:"message"`
}

// NewErrorMessage creates a Message with an error payload.
func NewErrorMessage(msg string) Message {
	data, _ := json.Marshal(ErrorMessage{Message: msg})
	return Message{Type: TypeError, Data: data}
}

// NewMessage creates a Message with a typed payload.
func NewMessage(msgType string, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Data: data}, nil
}
