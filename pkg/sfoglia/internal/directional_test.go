package internal

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/stretchr/testify/assert"
)

func TestDirectionalInputIgnoresNonDirectional(t *testing.T) {
	d := NewDirectionalInput()

	assert.False(t, d.SetHeld(constants.VirtualButtonA, true))
	assert.False(t, d.IsHeld())
}

func TestDirectionalInputHeldDirection(t *testing.T) {
	d := NewDirectionalInput()

	assert.True(t, d.SetHeld(constants.VirtualButtonDown, true))
	assert.True(t, d.IsHeld())
	assert.Equal(t, DirectionDown, d.HeldDirection())

	d.SetHeld(constants.VirtualButtonDown, false)
	assert.False(t, d.IsHeld())
	assert.Equal(t, DirectionNone, d.HeldDirection())
}

func TestDirectionalInputRepeatTiming(t *testing.T) {
	d := NewDirectionalInputWithTiming(20*time.Millisecond, 10*time.Millisecond)

	d.SetHeld(constants.VirtualButtonUp, true)
	assert.Equal(t, DirectionNone, d.Update(), "no repeat before the initial delay")

	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, DirectionUp, d.Update(), "first repeat after the delay")
	assert.Equal(t, DirectionNone, d.Update(), "interval not elapsed yet")

	time.Sleep(15 * time.Millisecond)
	assert.Equal(t, DirectionUp, d.Update(), "subsequent repeats after the interval")
}

func TestDirectionalInputReset(t *testing.T) {
	d := NewDirectionalInputWithTiming(time.Millisecond, time.Millisecond)

	d.SetHeld(constants.VirtualButtonLeft, true)
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, DirectionLeft, d.Update())

	d.Reset()
	assert.False(t, d.IsHeld())
	assert.Equal(t, DirectionNone, d.Update())
}

func TestDirectionalInputPriority(t *testing.T) {
	d := NewDirectionalInputWithTiming(time.Millisecond, time.Millisecond)

	d.SetHeld(constants.VirtualButtonDown, true)
	d.SetHeld(constants.VirtualButtonUp, true)
	assert.Equal(t, DirectionUp, d.HeldDirection(), "up wins when both are held")
}
