package bow

import "time"

// DefaultNotchDelay is the wait between grabbing an empty bow and an arrow appearing on it.
const DefaultNotchDelay = time.Second

// Quiver notches a fresh arrow on the bow while it is held.
type Quiver struct {
	delay   time.Duration
	held    bool
	notched bool
	waiting bool
	timer   time.Duration
}

func NewQuiver(delay time.Duration) *Quiver {
	return &Quiver{delay: delay}
}

// Grab marks the bow as held.
func (q *Quiver) Grab() {
	q.held = true
}

// Drop marks the bow as released; a notched arrow is discarded.
func (q *Quiver) Drop() {
	q.held = false
	q.notched = false
	q.waiting = false
	q.timer = 0
}

func (q *Quiver) Held() bool {
	return q.held
}

func (q *Quiver) Notched() bool {
	return q.notched
}

// Tick counts down toward the next notch. It returns true on the tick an arrow is notched.
func (q *Quiver) Tick(dt time.Duration) bool {
	if q.held && !q.notched && !q.waiting {
		q.waiting = true
		q.timer = q.delay
	}
	if !q.waiting {
		return false
	}

	q.timer -= dt
	if q.timer > 0 {
		return false
	}
	q.waiting = false
	q.notched = true
	return true
}

// Consume takes the notched arrow off the string. It reports whether there was one.
func (q *Quiver) Consume() bool {
	if !q.notched {
		return false
	}
	q.notched = false
	return true
}
