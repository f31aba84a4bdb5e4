package view

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a Z-up perspective camera looking from Eye at Center.
type Camera struct {
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3
	FovY   float32 // radians
}

func NewCamera() Camera {
	c := Camera{
		Center: mgl32.Vec3{0, 0, 0},
		FovY:   mgl32.DegToRad(45),
	}
	c.SetOrientation(OrientationIso)
	return c
}

func (c Camera) Direction() mgl32.Vec3 {
	d := c.Center.Sub(c.Eye)
	if d.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return d.Normalize()
}

func (c Camera) Distance() float32 {
	return c.Center.Sub(c.Eye).Len()
}

func (c Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Center, c.Up)
}

type Orientation int

const (
	OrientationIso Orientation = iota
	OrientationFront
	OrientationBack
	OrientationLeft
	OrientationRight
	OrientationTop
	OrientationBottom
)

func (o Orientation) String() string {
	switch o {
	case OrientationFront:
		return "front"
	case OrientationBack:
		return "back"
	case OrientationLeft:
		return "left"
	case OrientationRight:
		return "right"
	case OrientationTop:
		return "top"
	case OrientationBottom:
		return "bottom"
	}
	return "iso"
}

func ParseOrientation(s string) (Orientation, bool) {
	for o := OrientationIso; o <= OrientationBottom; o++ {
		if o.String() == s {
			return o, true
		}
	}
	return OrientationIso, false
}

// directionAndUp returns the viewing direction (eye towards center) and
// the up vector of o.
func (o Orientation) directionAndUp() (mgl32.Vec3, mgl32.Vec3) {
	zUp := mgl32.Vec3{0, 0, 1}
	switch o {
	case OrientationFront:
		return mgl32.Vec3{0, 1, 0}, zUp
	case OrientationBack:
		return mgl32.Vec3{0, -1, 0}, zUp
	case OrientationLeft:
		return mgl32.Vec3{1, 0, 0}, zUp
	case OrientationRight:
		return mgl32.Vec3{-1, 0, 0}, zUp
	case OrientationTop:
		return mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}
	case OrientationBottom:
		return mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, -1, 0}
	}
	dir := mgl32.Vec3{-1, 1, -1}.Normalize()
	right := dir.Cross(zUp).Normalize()
	return dir, right.Cross(dir).Normalize()
}

// SetOrientation turns the camera around Center, keeping its distance.
func (c *Camera) SetOrientation(o Orientation) {
	dist := c.Distance()
	if dist == 0 {
		dist = 10
	}
	dir, up := o.directionAndUp()
	c.Eye = c.Center.Sub(dir.Mul(dist))
	c.Up = up
}

// FitBox moves the camera along its direction so that the sphere bounding
// [min, max] fills the field of view.
func (c *Camera) FitBox(min, max mgl32.Vec3) {
	if max.X() < min.X() || max.Y() < min.Y() || max.Z() < min.Z() {
		return
	}
	dir := c.Direction()
	center := min.Add(max).Mul(0.5)
	radius := max.Sub(min).Len() / 2
	if radius == 0 {
		radius = 1
	}
	halfFov := c.FovY / 2
	if halfFov <= 0 {
		halfFov = mgl32.DegToRad(22.5)
	}
	dist := radius / math32.Sin(halfFov)
	c.Center = center
	c.Eye = center.Sub(dir.Mul(dist))
}

// Lerp interpolates every camera parameter linearly. The up vector is
// renormalized.
func Lerp(from, to Camera, t float32) Camera {
	mix := func(a, b mgl32.Vec3) mgl32.Vec3 {
		return a.Add(b.Sub(a).Mul(t))
	}
	up := mix(from.Up, to.Up)
	if up.Len() == 0 {
		up = to.Up
	} else {
		up = up.Normalize()
	}
	return Camera{
		Eye:    mix(from.Eye, to.Eye),
		Center: mix(from.Center, to.Center),
		Up:     up,
		FovY:   from.FovY + (to.FovY-from.FovY)*t,
	}
}
