package arena

import (
	"errors"

	"github.com/ghosthunt/ghosthunt-server/internal/bow"
	"github.com/ghosthunt/ghosthunt-server/internal/game"
	"github.com/ghosthunt/ghosthunt-server/internal/geom"
)

var (
	ErrNoHand     = errors.New("no hand")
	ErrBowNotHeld = errors.New("bow is not held")
	ErrStringHeld = errors.New("string is held by the other hand")
)

// MoveHead updates the player's head position.
func (a *Arena) MoveHead(pos geom.Vec3) {
	a.head = pos
	a.hasHead = true
}

// AimBow sets where arrows leave the bow and the direction they fly.
func (a *Arena) AimBow(pos, forward geom.Vec3) {
	a.bowPos = pos
	if f := forward.Normalize(); f != geom.Zero {
		a.aim = f
	}
}

// GrabBow picks the bow up; an arrow is notched after the notch delay.
func (a *Arena) GrabBow() {
	a.quiver.Grab()
}

// DropBow puts the bow down. A notched arrow is discarded, not fired.
func (a *Arena) DropBow() {
	a.quiver.Drop()
	a.pull.EndPull()
}

// GrabString starts drawing with hand. The same hand grabbing again is not an error.
func (a *Arena) GrabString(hand bow.Hand) error {
	if hand == nil {
		return ErrNoHand
	}
	if !a.quiver.Held() {
		return ErrBowNotHeld
	}
	if h := a.pull.Hand(); h != nil && h.ID() != hand.ID() {
		return ErrStringHeld
	}
	a.pull.BeginPull(hand)
	return nil
}

// MoveHand feeds the drawing hand position, in the bow's frame.
func (a *Arena) MoveHand(local geom.Vec3) {
	a.pull.Tick(local)
}

// ReleaseString lets go of the string, firing the notched arrow if there is one.
func (a *Arena) ReleaseString() {
	a.pull.EndPull()
}

func (a *Arena) onBowEvent(e bow.Event) {
	switch e.Type {
	case bow.EventPullStart:
		a.hand = a.pull.Hand()
		bow.Tap(a.hand)
	case bow.EventPullChanged:
		if a.hooks.PullChanged != nil {
			a.hooks.PullChanged(e.Level)
		}
	case bow.EventReleased:
		if !a.quiver.Consume() {
			return
		}
		ar := game.LaunchArrow(a.cfg.Arrow, a.bowPos, a.aim, e.Level)
		a.arrows = append(a.arrows, ar)
		bow.Burst(a.hand)
		if a.hooks.ArrowReleased != nil {
			a.hooks.ArrowReleased(arrowView(ar))
		}
	case bow.EventPullEnd:
		bow.Stop(a.hand)
		a.hand = nil
	}
}
