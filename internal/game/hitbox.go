package game

// CollisionEvent reports that an entity of kind Other entered a trigger.
type CollisionEvent struct {
	Other   EntityKind
	OtherID string
}

// Hitbox is the player's body trigger. Ghosts entering it end the hunt.
type Hitbox struct {
	state *State
}

func NewHitbox(state *State) *Hitbox {
	return &Hitbox{state: state}
}

// OnCollision handles a trigger entry. It reports whether the event was fatal.
func (h *Hitbox) OnCollision(ev CollisionEvent) bool {
	if h == nil || h.state == nil {
		return false
	}
	switch ev.Other {
	case KindGhost:
		h.state.PlayerDied()
		return true
	default:
		return false
	}
}
