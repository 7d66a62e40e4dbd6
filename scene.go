package grove

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, structural events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event SceneEvent)
}

const defaultRenderListCap = 256

// Scene is the shared context for a tree of objects. It owns the root, the
// views, and the current view index that GetGeometry resolves Hidden masks
// against.
type Scene struct {
	root    *Object
	store   EntityStore
	debug   bool
	current int

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNGs ("screenshots" if empty).
	ScreenshotDir string

	views    []*View
	updateFn func() error

	// Render state
	renderList []*Geometry
	vertBuf    []ebiten.Vertex
	stats      frameStats

	screenshotQueue []string
}

// NewScene creates a scene with a root object and a single full-screen view
// at index 0.
func NewScene() *Scene {
	s := &Scene{
		renderList: make([]*Geometry, 0, defaultRenderListCap),
	}
	s.root = NewObject(nil)
	s.root.Name = "root"
	s.root.scene = s
	s.views = []*View{newView(0, Rect{})}
	return s
}

// Root returns the scene's root object.
func (s *Scene) Root() *Object {
	return s.root
}

// NewObject creates an object directly under the root.
func (s *Scene) NewObject(name string, drivers ...*Driver) *Object {
	o := NewObject(s.root, drivers...)
	o.Name = name
	return o
}

// CurrentView returns the view index used to resolve Hidden masks.
// A nil scene reports view 0.
func (s *Scene) CurrentView() int {
	if s == nil {
		return 0
	}
	return s.current
}

// SetCurrentView selects the view index used by GetGeometry.
// Panics if view is outside [0, MaxViews).
func (s *Scene) SetCurrentView(view int) {
	if view < 0 || view >= MaxViews {
		panic("grove: view index out of range")
	}
	s.current = view
}

// Update runs the per-frame projection pass: world matrices are recomputed
// for the dirty part of the tree only.
func (s *Scene) Update() {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.stats.projected = 0
	s.root.Project(Identity())
	if s.debug {
		s.stats.projectTime = time.Since(t0)
	}
}

// Collect selects view as the current view and returns the visible
// geometry in tree order. The returned slice is reused by the next call.
func (s *Scene) Collect(view int) []*Geometry {
	s.SetCurrentView(view)
	s.renderList = s.root.GetGeometry(s.renderList[:0])
	return s.renderList
}

// NewView creates a view with the lowest free index and the given viewport.
// Panics if all MaxViews indices are in use.
func (s *Scene) NewView(viewport Rect) *View {
	var used ViewMask
	for _, v := range s.views {
		used |= ViewBit(v.Index)
	}
	for i := 0; i < MaxViews; i++ {
		if used&ViewBit(i) == 0 {
			v := newView(i, viewport)
			s.views = append(s.views, v)
			return v
		}
	}
	panic("grove: all view indices are in use")
}

// RemoveView removes a view from the scene. Its index becomes free again.
func (s *Scene) RemoveView(v *View) {
	for i, c := range s.views {
		if c == v {
			s.views = append(s.views[:i], s.views[i+1:]...)
			return
		}
	}
}

// Views returns the scene's view list. The returned slice MUST NOT be mutated.
func (s *Scene) Views() []*View {
	return s.views
}

// View returns the view with the given index, or nil.
func (s *Scene) View(index int) *View {
	for _, v := range s.views {
		if v.Index == index {
			return v
		}
	}
	return nil
}

// SetUpdateFunc sets a callback run by Run before each Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFn = fn
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// emit forwards e to the entity store, if any. Safe on a nil scene.
func (s *Scene) emit(e SceneEvent) {
	if s == nil || s.store == nil {
		return
	}
	s.store.EmitEvent(e)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-object
// access panics, tree depth and child count warnings are logged, and
// per-frame stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that object
// operations (which may run before an object has a Scene) can check it
// cheaply. Only valid with a single Scene.
var globalDebug bool
