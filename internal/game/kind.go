package game

import "encoding/json"

// EntityKind identifies what an entity is, for collision dispatch.
type EntityKind int

const (
	KindNone EntityKind = iota
	KindGhost
	KindArrow
	KindPlayer
	KindSurface
)

func (k EntityKind) String() string {
	switch k {
	case KindGhost:
		return "ghost"
	case KindArrow:
		return "arrow"
	case KindPlayer:
		return "player"
	case KindSurface:
		return "surface"
	default:
		return "none"
	}
}

// Layer is the collision layer of the kind, used by overlap masks.
func (k EntityKind) Layer() uint {
	return uint(k)
}

// MarshalJSON serializes EntityKind as a string.
func (k EntityKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON deserializes EntityKind from a string.
func (k *EntityKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "ghost":
		*k = KindGhost
	case "arrow":
		*k = KindArrow
	case "player":
		*k = KindPlayer
	case "surface":
		*k = KindSurface
	default:
		*k = KindNone
	}
	return nil
}
