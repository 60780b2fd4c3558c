package arena

import (
	"time"

	"github.com/ghosthunt/ghosthunt-server/internal/bow"
)

type plainHand string

func (h plainHand) ID() string { return string(h) }

type hapticHand struct {
	id   string
	sink bow.HapticSink
}

func (h hapticHand) ID() string { return h.id }

func (h hapticHand) SendHapticImpulse(intensity float64, duration time.Duration) {
	h.sink.SendHapticImpulse(intensity, duration)
}

// NewHand returns a bow hand. With a nil sink the hand has no haptics.
func NewHand(id string, sink bow.HapticSink) bow.Hand {
	if sink == nil {
		return plainHand(id)
	}
	return hapticHand{id: id, sink: sink}
}

// HapticFunc adapts a function to bow.HapticSink.
type HapticFunc func(intensity float64, duration time.Duration)

func (f HapticFunc) SendHapticImpulse(intensity float64, duration time.Duration) {
	f(intensity, duration)
}
