// Package flow owns the hourglass timing state: the fill fractions of
// both chambers, the countdown timer, and the flip animation. The
// geometry packages never import it; they consume the fill fraction it
// produces as a plain input.
package flow

import (
	"time"

	"github.com/chewxy/math32"
)

// Hourglass tracks the sand distribution and remaining time of one
// hourglass. The zero value is not useful; create instances with New.
type Hourglass struct {
	// TotalTime is the full duration the hourglass measures.
	TotalTime time.Duration
	// RemainingTime counts down while sand is in the upper chamber.
	RemainingTime time.Duration
	// Running reports whether sand is currently flowing.
	Running bool

	// FlipDuration is how long a flip animation takes.
	FlipDuration time.Duration
	// AutoFlip schedules a flip as soon as the upper chamber drains.
	AutoFlip bool

	// Rotation is the current orientation in radians. It interpolates
	// from 0 to π while a flip is in progress and snaps back to 0 when
	// the flip completes with the chambers swapped.
	Rotation float32

	// UpperChamber and LowerChamber are fill fractions in [0, 1].
	// Upper always names the chamber sand drains from.
	UpperChamber float32
	LowerChamber float32

	// FlowRate is the fraction of a chamber transferred per second.
	FlowRate float32

	flipping     bool
	flipProgress float32
}

// New creates a running hourglass with a full upper chamber and a flow
// rate that empties it over the given total time.
func New(total time.Duration) *Hourglass {
	h := &Hourglass{
		TotalTime:     total,
		RemainingTime: total,
		Running:       true,
		FlipDuration:  time.Second,
		UpperChamber:  1,
		LowerChamber:  0,
	}
	if secs := float32(total.Seconds()); secs > 0 {
		h.FlowRate = 1 / secs
	}
	return h
}

// Update advances the simulation by delta. A flip in progress
// interpolates the rotation and pauses the sand; otherwise sand
// transfers from the upper to the lower chamber at the flow rate and
// the remaining time tracks the upper chamber.
func (h *Hourglass) Update(delta time.Duration) {
	if h.flipping {
		h.advanceFlip(delta)
	}

	if h.Running && !h.flipping {
		h.transferSand(delta)
		h.RemainingTime = time.Duration(h.UpperChamber * float32(h.TotalTime))

		if h.UpperChamber <= 0 {
			h.Running = false
			if h.AutoFlip {
				h.Flip()
			}
		}
	}
}

// advanceFlip steps the flip animation. On completion the chambers
// swap, the timer inverts so the drained time becomes the time left,
// and a stopped hourglass restarts if the new upper chamber has sand.
func (h *Hourglass) advanceFlip(delta time.Duration) {
	if secs := float32(h.FlipDuration.Seconds()); secs > 0 {
		h.flipProgress += float32(delta.Seconds()) / secs
	} else {
		h.flipProgress = 1
	}

	if h.flipProgress < 1 {
		h.Rotation = h.flipProgress * math32.Pi
		return
	}

	h.flipProgress = 1
	h.flipping = false
	h.Rotation = 0

	h.UpperChamber, h.LowerChamber = h.LowerChamber, h.UpperChamber
	h.RemainingTime = h.TotalTime - h.RemainingTime

	if !h.Running && h.UpperChamber > 0 {
		h.Running = true
	}
}

// transferSand moves sand from the upper to the lower chamber,
// clamping both to [0, 1].
func (h *Hourglass) transferSand(delta time.Duration) {
	transfer := h.FlowRate * float32(delta.Seconds())
	transfer = math32.Min(transfer, h.UpperChamber)

	h.UpperChamber = clamp01(h.UpperChamber - transfer)
	h.LowerChamber = clamp01(h.LowerChamber + transfer)
}

// Flip starts the flip animation. Calling Flip while one is already in
// progress has no effect.
func (h *Hourglass) Flip() {
	if h.flipping {
		return
	}
	h.flipping = true
	h.flipProgress = 0
}

// Flipping reports whether a flip is in progress.
func (h *Hourglass) Flipping() bool {
	return h.flipping
}

// FlipProgress returns the progress of the current flip in [0, 1].
func (h *Hourglass) FlipProgress() float32 {
	return h.flipProgress
}

// FillPercent returns the fill fraction of the draining chamber,
// clamped to [0, 1]. This is the value the sand outline generator
// consumes.
func (h *Hourglass) FillPercent() float32 {
	if h.TotalTime <= 0 {
		return 0
	}
	return clamp01(float32(h.RemainingTime) / float32(h.TotalTime))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
