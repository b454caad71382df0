package internal

import (
	"time"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

// Direction represents a cardinal direction for navigation.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// DirectionalInput tracks held directions and handles repeat timing.
// Embed this in component controllers to get consistent directional
// input handling across all components.
type DirectionalInput struct {
	held       [4]bool // up, down, left, right
	lastRepeat time.Time
	delay      time.Duration
	interval   time.Duration
	repeated   bool
}

// NewDirectionalInput creates a DirectionalInput with default timing:
// 300ms before the first repeat, then 50ms between repeats.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		delay:      delay,
		interval:   interval,
		lastRepeat: time.Now(),
	}
}

func directionIndex(button constants.VirtualButton) int {
	switch button {
	case constants.VirtualButtonUp:
		return 0
	case constants.VirtualButtonDown:
		return 1
	case constants.VirtualButtonLeft:
		return 2
	case constants.VirtualButtonRight:
		return 3
	}
	return -1
}

// SetHeld updates the held state for a direction based on a virtual button.
// Returns true if the button was a directional button.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	idx := directionIndex(button)
	if idx < 0 {
		return false
	}
	d.held[idx] = held
	if !held {
		d.repeated = false
	}
	return true
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held[0] || d.held[1] || d.held[2] || d.held[3]
}

// HeldDirection returns the currently held direction.
// If multiple directions are held, priority is: up, down, left, right.
func (d *DirectionalInput) HeldDirection() Direction {
	for i, held := range d.held {
		if held {
			return Direction(i + 1)
		}
	}
	return DirectionNone
}

// Update checks if a repeat event should fire based on timing.
// Call this every frame. It returns the direction that should be processed,
// or DirectionNone if no repeat should occur.
//
// The first repeat occurs after the configured delay, subsequent repeats
// after the configured interval.
func (d *DirectionalInput) Update() Direction {
	if !d.IsHeld() {
		d.lastRepeat = time.Now()
		d.repeated = false
		return DirectionNone
	}

	threshold := d.interval
	if !d.repeated {
		threshold = d.delay
	}

	if time.Since(d.lastRepeat) >= threshold {
		d.lastRepeat = time.Now()
		d.repeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	d.held = [4]bool{}
	d.repeated = false
	d.lastRepeat = time.Now()
}

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
