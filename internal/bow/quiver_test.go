package bow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuiver_NotchesAfterDelay(t *testing.T) {
	q := NewQuiver(DefaultNotchDelay)

	assert.False(t, q.Tick(500*time.Millisecond), "nothing happens while the bow is not held")

	q.Grab()
	assert.False(t, q.Tick(500*time.Millisecond))
	assert.False(t, q.Notched())

	assert.True(t, q.Tick(500*time.Millisecond))
	assert.True(t, q.Notched())

	assert.False(t, q.Tick(time.Second), "already notched")
}

func TestQuiver_ConsumeStartsNextNotch(t *testing.T) {
	q := NewQuiver(200 * time.Millisecond)
	q.Grab()
	q.Tick(200 * time.Millisecond)

	assert.True(t, q.Consume())
	assert.False(t, q.Consume())

	assert.False(t, q.Tick(100*time.Millisecond))
	assert.True(t, q.Tick(100*time.Millisecond))
}

func TestQuiver_DropDiscardsArrow(t *testing.T) {
	q := NewQuiver(100 * time.Millisecond)
	q.Grab()
	q.Tick(100 * time.Millisecond)
	assert.True(t, q.Notched())

	q.Drop()

	assert.False(t, q.Held())
	assert.False(t, q.Notched())
	assert.False(t, q.Tick(time.Second))
}
