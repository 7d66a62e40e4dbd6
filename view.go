package grove

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// orbitAnim holds an active eye tween for a view.
type orbitAnim struct {
	tweens [3]*gween.Tween
	done   bool
}

// View is one rendering view into the scene. Its Index selects the bit of
// every ViewMask that hides objects and geometry from it.
type View struct {
	// Index is the view's bit position, fixed at creation.
	Index int
	// Viewport is the screen-space rectangle this view renders into. A zero
	// width or height covers the whole target.
	Viewport Rect

	eye, center, up Vec3
	projection      Mat4
	matrix          Mat4
	dirty           bool

	orbit *orbitAnim
}

// newView creates a View looking down -Z from (0, 0, 1) with an identity
// projection.
func newView(index int, viewport Rect) *View {
	return &View{
		Index:      index,
		Viewport:   viewport,
		eye:        Vec3{0, 0, 1},
		up:         Vec3{0, 1, 0},
		projection: Identity(),
		dirty:      true,
	}
}

// SetPerspective sets a perspective projection. fovy is in radians; the
// aspect ratio follows the viewport.
func (v *View) SetPerspective(fovy, near, far float64) {
	aspect := 1.0
	if v.Viewport.Height > 0 {
		aspect = v.Viewport.Width / v.Viewport.Height
	}
	v.projection = mgl64.Perspective(fovy, aspect, near, far)
	v.dirty = true
}

// SetOrthographic sets an orthographic projection.
func (v *View) SetOrthographic(left, right, bottom, top, near, far float64) {
	v.projection = mgl64.Ortho(left, right, bottom, top, near, far)
	v.dirty = true
}

// LookAt places the view's eye and aims it at center.
func (v *View) LookAt(eye, center, up Vec3) {
	v.eye, v.center, v.up = eye, center, up
	v.orbit = nil
	v.dirty = true
}

// Eye returns the current eye position.
func (v *View) Eye() Vec3 {
	return v.eye
}

// MoveTo animates the eye to the given position over duration seconds,
// keeping the current center.
func (v *View) MoveTo(eye Vec3, duration float32, easeFn ease.TweenFunc) {
	a := &orbitAnim{}
	for i := range a.tweens {
		a.tweens[i] = gween.New(float32(v.eye[i]), float32(eye[i]), duration, easeFn)
	}
	v.orbit = a
}

// Update advances any active MoveTo animation by dt seconds.
func (v *View) Update(dt float32) {
	if v.orbit == nil || v.orbit.done {
		return
	}
	done := true
	for i, tw := range v.orbit.tweens {
		val, finished := tw.Update(dt)
		v.eye[i] = float64(val)
		if !finished {
			done = false
		}
	}
	v.orbit.done = done
	v.dirty = true
}

// Matrix returns projection * view.
func (v *View) Matrix() Mat4 {
	if v.dirty {
		v.matrix = v.projection.Mul4(mgl64.LookAtV(v.eye, v.center, v.up))
		v.dirty = false
	}
	return v.matrix
}

// WorldToScreen maps a world-space point to pixel coordinates inside
// bounds, which is normally the resolved viewport.
func (v *View) WorldToScreen(p Vec3, bounds Rect) (x, y float64) {
	ndc := TransformPoint(v.Matrix(), p)
	x = bounds.X + (ndc[0]+1)/2*bounds.Width
	y = bounds.Y + (1-ndc[1])/2*bounds.Height
	return x, y
}

// resolveViewport returns the viewport, substituting the full target when
// it has no area.
func (v *View) resolveViewport(targetW, targetH int) Rect {
	if v.Viewport.Width <= 0 || v.Viewport.Height <= 0 {
		return Rect{Width: float64(targetW), Height: float64(targetH)}
	}
	return v.Viewport
}
