package gfx

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Box is an axis aligned bounding box. The zero value is not empty, use
// EmptyBox to start accumulating points.
type Box struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

func EmptyBox() Box {
	inf := math32.Inf(1)
	return Box{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

func BoxOf(points ...mgl32.Vec3) Box {
	b := EmptyBox()
	for _, p := range points {
		b = b.Add(p)
	}
	return b
}

func (b Box) IsEmpty() bool {
	return b.Max.X() < b.Min.X() || b.Max.Y() < b.Min.Y() || b.Max.Z() < b.Min.Z()
}

func (b Box) Add(p mgl32.Vec3) Box {
	return Box{
		Min: mgl32.Vec3{math32.Min(b.Min.X(), p.X()), math32.Min(b.Min.Y(), p.Y()), math32.Min(b.Min.Z(), p.Z())},
		Max: mgl32.Vec3{math32.Max(b.Max.X(), p.X()), math32.Max(b.Max.Y(), p.Y()), math32.Max(b.Max.Z(), p.Z())},
	}
}

func (b Box) Union(other Box) Box {
	if other.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return other
	}
	return b.Add(other.Min).Add(other.Max)
}

func (b Box) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b Box) Size() mgl32.Vec3 {
	if b.IsEmpty() {
		return mgl32.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Transformed returns the box spanning the 8 transformed corners.
func (b Box) Transformed(m mgl32.Mat4) Box {
	if b.IsEmpty() {
		return b
	}
	corners := [8]mgl32.Vec3{
		{b.Min.X(), b.Min.Y(), b.Min.Z()},
		{b.Max.X(), b.Min.Y(), b.Min.Z()},
		{b.Min.X(), b.Max.Y(), b.Min.Z()},
		{b.Max.X(), b.Max.Y(), b.Min.Z()},
		{b.Min.X(), b.Min.Y(), b.Max.Z()},
		{b.Max.X(), b.Min.Y(), b.Max.Z()},
		{b.Min.X(), b.Max.Y(), b.Max.Z()},
		{b.Max.X(), b.Max.Y(), b.Max.Z()},
	}
	out := EmptyBox()
	for _, c := range corners {
		out = out.Add(m.Mul4x1(c.Vec4(1.0)).Vec3())
	}
	return out
}
