package internal

import (
	"time"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
)

// Direction is an arrow key.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func directionOf(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonUp:
		return DirectionUp
	case constants.VirtualButtonDown:
		return DirectionDown
	case constants.VirtualButtonLeft:
		return DirectionLeft
	case constants.VirtualButtonRight:
		return DirectionRight
	default:
		return DirectionNone
	}
}

// DirectionalInput turns held arrow keys into repeats at our own rate, so
// list scrolling feels the same whatever the OS key repeat is set to.
// When several arrows are held the most recently pressed one repeats.
type DirectionalInput struct {
	held     []Direction // press order, latest last
	next     time.Time
	delay    time.Duration
	interval time.Duration
	now      func() time.Time
}

// NewDirectionalInput repeats after 300ms, then every 50ms.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{delay: delay, interval: interval, now: time.Now}
}

// SetHeld records a press or release. It reports whether button is an arrow.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	dir := directionOf(button)
	if dir == DirectionNone {
		return false
	}

	d.release(dir)
	if held {
		d.held = append(d.held, dir)
		d.next = d.clock().Add(d.delay)
	} else if len(d.held) > 0 {
		// The arrow still held takes over after a fresh delay.
		d.next = d.clock().Add(d.delay)
	}
	return true
}

func (d *DirectionalInput) release(dir Direction) {
	for i, h := range d.held {
		if h == dir {
			d.held = append(d.held[:i], d.held[i+1:]...)
			return
		}
	}
}

func (d *DirectionalInput) IsHeld() bool {
	return len(d.held) > 0
}

// HeldDirection is the arrow that repeats, or DirectionNone.
func (d *DirectionalInput) HeldDirection() Direction {
	if len(d.held) == 0 {
		return DirectionNone
	}
	return d.held[len(d.held)-1]
}

// Update is called once per frame and returns the direction to repeat, if
// one is due.
func (d *DirectionalInput) Update() Direction {
	if len(d.held) == 0 {
		return DirectionNone
	}
	now := d.clock()
	if now.Before(d.next) {
		return DirectionNone
	}
	d.next = now.Add(d.interval)
	return d.HeldDirection()
}

func (d *DirectionalInput) Reset() {
	d.held = d.held[:0]
}

func (d *DirectionalInput) clock() time.Time {
	if d.now == nil {
		return time.Now()
	}
	return d.now()
}

// VirtualButton maps d back to its arrow button.
func (d Direction) VirtualButton() constants.VirtualButton {
	switch d {
	case DirectionUp:
		return constants.VirtualButtonUp
	case DirectionDown:
		return constants.VirtualButtonDown
	case DirectionLeft:
		return constants.VirtualButtonLeft
	case DirectionRight:
		return constants.VirtualButtonRight
	default:
		return constants.VirtualButtonUnassigned
	}
}

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
