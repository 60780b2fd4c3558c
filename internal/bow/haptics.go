package bow

import (
	"time"

	"github.com/ghosthunt/ghosthunt-server/internal/geom"
)

// sinkOf returns the haptic sink behind hand, if it has one.
func sinkOf(hand Hand) (HapticSink, bool) {
	if hand == nil {
		return nil, false
	}
	s, ok := hand.(HapticSink)
	return s, ok
}

// SupportsHaptics reports whether hand can vibrate.
func SupportsHaptics(hand Hand) bool {
	_, ok := sinkOf(hand)
	return ok
}

// Impulse sends a single vibration.
func Impulse(hand Hand, amplitude float64, duration time.Duration) {
	if s, ok := sinkOf(hand); ok {
		s.SendHapticImpulse(amplitude, duration)
	}
}

// Pulse approximates count pulses with one impulse spanning them all.
func Pulse(hand Hand, amplitude float64, count int, interval time.Duration) {
	Impulse(hand, amplitude, time.Duration(count)*interval)
}

// RampUp sends the peak amplitude for the whole duration.
func RampUp(hand Hand, maxAmplitude float64, duration time.Duration) {
	Impulse(hand, maxAmplitude, duration)
}

// Burst is the strong feedback used for releases and hits.
func Burst(hand Hand) {
	Impulse(hand, 1.0, 100*time.Millisecond)
}

// Tap is a subtle feedback for UI interactions.
func Tap(hand Hand) {
	Impulse(hand, 0.3, 50*time.Millisecond)
}

// Continuous maps value onto [minAmp,maxAmp] for one frame of length dt.
func Continuous(hand Hand, value, minAmp, maxAmp float64, dt time.Duration) {
	Impulse(hand, geom.Lerp(minAmp, maxAmp, value), dt)
}

// Stop cancels any running vibration.
func Stop(hand Hand) {
	Impulse(hand, 0, 0)
}
