package bow

//go:generate go tool mockgen -destination=./mocks/haptic_sink_mock.go -package=mocks . HapticSink

import (
	"log/slog"
	"time"

	"github.com/ghosthunt/ghosthunt-server/internal/geom"
)

// PullHapticDuration is the length of the impulse sent on every pulling tick.
const PullHapticDuration = 100 * time.Millisecond

type State int

const (
	StateIdle State = iota
	StatePulling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePulling:
		return "pulling"
	default:
		return "unknown"
	}
}

// Hand is the interactor holding the string.
// Hands that also implement HapticSink receive pull feedback.
type Hand interface {
	ID() string
}

// HapticSink accepts fire-and-forget vibration requests.
type HapticSink interface {
	SendHapticImpulse(intensity float64, duration time.Duration)
}

// StringVisual displays the string nock at a position in the bow's frame.
type StringVisual interface {
	SetNockPosition(p geom.Vec3)
}

// Anchors are the rest and full-draw positions of the nock, in the bow's frame.
type Anchors struct {
	Start geom.Vec3 `json:"start"`
	End   geom.Vec3 `json:"end"`
}

// Level projects hand onto the start→end axis and normalizes it to [0,1].
func (a Anchors) Level(hand geom.Vec3) float64 {
	axis := a.End.Sub(a.Start)
	sq := axis.LenSq()
	if sq < 1e-18 {
		return 0
	}
	// dot(d, axis/|axis|) / |axis| == dot(d, axis) / |axis|^2, and the latter is exactly 1 at End.
	return geom.Clamp01(hand.Sub(a.Start).Dot(axis) / sq)
}

// Pull is the draw state machine of one bow string.
// It is not safe for concurrent use.
type Pull struct {
	anchors   Anchors
	visual    StringVisual
	hand      Hand
	level     float64
	events    chan Event
	observers []func(Event)
}

// NewPull creates an idle string. Events are buffered up to buffer entries on the
// Events channel; a zero buffer disables the channel and leaves only observers.
func NewPull(anchors Anchors, buffer int) *Pull {
	p := &Pull{anchors: anchors}
	if buffer > 0 {
		p.events = make(chan Event, buffer)
	}
	return p
}

// SetVisual attaches the string renderer. nil detaches it.
func (p *Pull) SetVisual(v StringVisual) {
	p.visual = v
}

// Subscribe registers fn to be called synchronously for every event.
func (p *Pull) Subscribe(fn func(Event)) {
	p.observers = append(p.observers, fn)
}

// Events returns the buffered event stream, or nil when buffering is disabled.
func (p *Pull) Events() <-chan Event {
	return p.events
}

func (p *Pull) State() State {
	if p.hand == nil {
		return StateIdle
	}
	return StatePulling
}

// Level is the current pull level in [0,1].
func (p *Pull) Level() float64 {
	return p.level
}

func (p *Pull) Anchors() Anchors {
	return p.anchors
}

// Hand returns the hand holding the string, or nil.
func (p *Pull) Hand() Hand {
	return p.hand
}

// NockPosition is where the visual nock sits for the current level.
func (p *Pull) NockPosition() geom.Vec3 {
	return geom.LerpVec(p.anchors.Start, p.anchors.End, p.level)
}

// BeginPull grabs the string with hand.
func (p *Pull) BeginPull(hand Hand) {
	if hand == nil || p.hand != nil {
		return
	}
	p.hand = hand
	p.publish(Event{Type: EventPullStart, HandID: hand.ID()})
}

// Tick recomputes the pull level from the holding hand's position.
func (p *Pull) Tick(handPos geom.Vec3) {
	if p.hand == nil {
		return
	}

	old := p.level
	p.level = p.anchors.Level(handPos)
	if p.level != old {
		p.publish(Event{Type: EventPullChanged, Level: p.level, HandID: p.hand.ID()})
	}

	p.updateVisual()
	if sink, ok := p.hand.(HapticSink); ok {
		sink.SendHapticImpulse(p.level, PullHapticDuration)
	}
}

// EndPull lets go of the string. Released carries the level reached before the reset.
func (p *Pull) EndPull() {
	if p.hand == nil {
		return
	}
	handID := p.hand.ID()
	p.publish(Event{Type: EventReleased, Level: p.level, HandID: handID})

	p.hand = nil
	p.level = 0
	p.publish(Event{Type: EventPullEnd, HandID: handID})
	p.updateVisual()
}

func (p *Pull) updateVisual() {
	if p.visual != nil {
		p.visual.SetNockPosition(p.NockPosition())
	}
}

func (p *Pull) publish(e Event) {
	for _, fn := range p.observers {
		fn(e)
	}
	if p.events == nil {
		return
	}
	select {
	case p.events <- e:
	default:
		slog.Warn("bow event buffer full, dropping event", "event", e.Type.String())
	}
}
