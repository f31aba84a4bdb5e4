package view

import (
	"time"

	"github.com/chewxy/math32"
)

// EasingCurve maps normalized time [0,1] to progress [0,1].
type EasingCurve func(t float32) float32

func EaseLinear(t float32) float32 { return t }

func EaseOutCubic(t float32) float32 {
	return 1 - math32.Pow(1-t, 3)
}

func EaseInOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math32.Pow(-2*t+2, 2)/2
}

// EasingByName resolves the curve names accepted in options.
func EasingByName(name string) (EasingCurve, bool) {
	switch name {
	case "linear":
		return EaseLinear, true
	case "out_cubic", "":
		return EaseOutCubic, true
	case "in_out_quad":
		return EaseInOutQuad, true
	}
	return nil, false
}

// CameraAnimation interpolates between two cameras over a fixed duration.
// It is driven by Step, so it never owns a timer.
type CameraAnimation struct {
	Duration time.Duration
	Easing   EasingCurve

	from, to Camera
	elapsed  time.Duration
	running  bool
}

func NewCameraAnimation(duration time.Duration, easing EasingCurve) *CameraAnimation {
	if easing == nil {
		easing = EaseOutCubic
	}
	return &CameraAnimation{Duration: duration, Easing: easing}
}

func (a *CameraAnimation) Start(from, to Camera) {
	a.from, a.to = from, to
	a.elapsed = 0
	a.running = a.Duration > 0
}

func (a *CameraAnimation) IsRunning() bool {
	return a.running
}

func (a *CameraAnimation) Target() Camera {
	return a.to
}

// Step advances the animation by dt and returns the current camera.
func (a *CameraAnimation) Step(dt time.Duration) (Camera, bool) {
	if !a.running {
		return a.to, true
	}
	a.elapsed += dt
	if a.elapsed >= a.Duration {
		a.running = false
		return a.to, true
	}
	t := float32(a.elapsed) / float32(a.Duration)
	return Lerp(a.from, a.to, a.Easing(t)), false
}

// Stop jumps to the end of the animation.
func (a *CameraAnimation) Stop() Camera {
	a.running = false
	return a.to
}

// TrihedronMode selects the orientation helper drawn in the view.
type TrihedronMode int

const (
	TrihedronNone TrihedronMode = iota
	TrihedronAxisHelper
	TrihedronViewCube
)

func (m TrihedronMode) String() string {
	switch m {
	case TrihedronAxisHelper:
		return "axis_helper"
	case TrihedronViewCube:
		return "view_cube"
	}
	return "none"
}

func ParseTrihedronMode(s string) (TrihedronMode, bool) {
	for _, m := range []TrihedronMode{TrihedronNone, TrihedronAxisHelper, TrihedronViewCube} {
		if m.String() == s {
			return m, true
		}
	}
	return TrihedronNone, false
}

type Corner int

const (
	CornerBottomLeft Corner = iota
	CornerBottomRight
	CornerTopLeft
	CornerTopRight
)

func (c Corner) String() string {
	switch c {
	case CornerBottomRight:
		return "bottom_right"
	case CornerTopLeft:
		return "top_left"
	case CornerTopRight:
		return "top_right"
	}
	return "bottom_left"
}

func ParseCorner(s string) (Corner, bool) {
	for _, c := range []Corner{CornerBottomLeft, CornerBottomRight, CornerTopLeft, CornerTopRight} {
		if c.String() == s {
			return c, true
		}
	}
	return CornerBottomLeft, false
}
