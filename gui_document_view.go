package mayo

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mayo3d/mayo/gfx"
	"github.com/mayo3d/mayo/view"
)

func (g *GuiDocument) ExplodingFactor() float32 {
	return g.explodingFactor
}

// SetExplodingFactor moves every object away from the center of its
// entity, by twice its offset from that center at t=1. t is clamped to
// [0,1]; t=0 restores the original placements exactly.
func (g *GuiDocument) SetExplodingFactor(t float32) {
	t = mgl32.Clamp(t, 0, 1)
	g.explodingFactor = t

	blocker := g.scene.NewRedrawBlocker()
	defer blocker.Release()
	for _, ent := range g.entities {
		center := ent.bndBox.Center()
		for _, o := range ent.objects {
			if t == 0 {
				g.scene.SetObjectTransformation(o.obj, o.trsfOriginal)
				continue
			}
			offset := o.bndBox.Center().Sub(center).Mul(2 * t)
			trsf := mgl32.Translate3D(offset.X(), offset.Y(), offset.Z()).Mul4(o.trsfOriginal)
			g.scene.SetObjectTransformation(o.obj, trsf)
		}
	}
	g.scene.Redraw()
}

func (g *GuiDocument) Camera() view.Camera {
	return g.camera
}

func (g *GuiDocument) IsViewAnimationRunning() bool {
	return g.cameraAnimation.IsRunning()
}

// SetViewCameraOrientation turns the camera towards o through the camera
// animation.
func (g *GuiDocument) SetViewCameraOrientation(o view.Orientation) {
	target := g.animationTarget()
	target.SetOrientation(o)
	g.runViewCameraAnimation(target)
}

// FitAll frames the whole graphics bounding box through the camera
// animation.
func (g *GuiDocument) FitAll() {
	if g.bndBox.IsEmpty() {
		return
	}
	target := g.animationTarget()
	target.FitBox(g.bndBox.Min, g.bndBox.Max)
	g.runViewCameraAnimation(target)
}

// StepViewAnimation advances the camera animation by dt and reports
// whether it is over.
func (g *GuiDocument) StepViewAnimation(dt time.Duration) bool {
	if !g.cameraAnimation.IsRunning() {
		return true
	}
	cam, done := g.cameraAnimation.Step(dt)
	g.camera = cam
	return done
}

// A new animation chains from where the running one was heading.
func (g *GuiDocument) animationTarget() view.Camera {
	if g.cameraAnimation.IsRunning() {
		return g.cameraAnimation.Target()
	}
	return g.camera
}

func (g *GuiDocument) runViewCameraAnimation(target view.Camera) {
	g.cameraAnimation.Start(g.camera, target)
	if !g.cameraAnimation.IsRunning() {
		g.camera = target
	}
	g.scene.Redraw()
}

func (g *GuiDocument) fitCameraNow() {
	if g.bndBox.IsEmpty() {
		return
	}
	if g.cameraAnimation.IsRunning() {
		g.camera = g.cameraAnimation.Stop()
	}
	g.camera.FitBox(g.bndBox.Min, g.bndBox.Max)
}

func (g *GuiDocument) ViewTrihedronMode() view.TrihedronMode {
	return g.trihedronMode
}

// SetViewTrihedronMode replaces the orientation helper objects shown in
// the scene. Helpers are never mapped to document nodes.
func (g *GuiDocument) SetViewTrihedronMode(mode view.TrihedronMode) {
	if mode == g.trihedronMode && (mode == view.TrihedronNone || len(g.trihedronObjects) > 0) {
		return
	}

	blocker := g.scene.NewRedrawBlocker()
	for _, obj := range g.trihedronObjects {
		g.scene.EraseObject(obj)
	}
	g.trihedronObjects = nil
	switch mode {
	case view.TrihedronAxisHelper:
		g.trihedronObjects = []*gfx.Object{gfx.NewHelper("axis-x"), gfx.NewHelper("axis-y"), gfx.NewHelper("axis-z")}
	case view.TrihedronViewCube:
		g.trihedronObjects = []*gfx.Object{gfx.NewHelper("view-cube")}
	}
	for _, obj := range g.trihedronObjects {
		g.scene.AddObject(obj)
	}
	blocker.Release()

	changed := mode != g.trihedronMode
	g.trihedronMode = mode
	if changed {
		g.listener.ViewTrihedronModeChanged(g, mode)
	}
}

func (g *GuiDocument) ViewTrihedronCorner() view.Corner {
	return g.trihedronCorner
}

func (g *GuiDocument) SetViewTrihedronCorner(c view.Corner) {
	if c == g.trihedronCorner {
		return
	}
	g.trihedronCorner = c
	if len(g.trihedronObjects) > 0 {
		g.scene.Redraw()
	}
}
