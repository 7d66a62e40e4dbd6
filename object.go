package grove

// ViewMask is a per-view visibility bitmask. Bit i set hides the owner in
// view i.
type ViewMask uint16

// MaxViews is the number of view indices a ViewMask can address.
const MaxViews = 16

// ViewBit returns the mask with only the bit for view set.
func ViewBit(view int) ViewMask {
	return ViewMask(1) << uint(view)
}

// --- ID counter ---

// idCounter is shared by objects, geometry and transforms (no atomic, grove
// is single-threaded).
var idCounter uint32

func nextID() uint32 {
	idCounter++
	return idCounter
}

// --- Object ---

// Object is a node in the spatial hierarchy. It exclusively owns its child
// objects, geometry and transforms; the parent link is a back-reference only.
type Object struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	parent    *Object
	objects   []*Object
	geometry  []*Geometry
	transform []*Transform

	// Computed during projection; valid only while dirty is false.
	world Mat4
	dirty bool

	// Hidden hides this object and everything beneath it in the views whose
	// bits are set.
	Hidden ViewMask

	scene  *Scene
	driver Chain

	// Metadata
	UserData any
	EntityID uint32

	disposed bool
}

// NewObject allocates an object and initializes it under parent (which may
// be nil). drivers are installed most-derived first, ahead of ObjectDriver.
func NewObject(parent *Object, drivers ...*Driver) *Object {
	return new(Object).Init(parent, drivers...)
}

// Init zeroes o, installs its driver chain and, when parent is non-nil,
// appends o to parent's objects and inherits parent's scene. Nothing is
// marked dirty; call MarkDirty once the object has visual state.
func (o *Object) Init(parent *Object, drivers ...*Driver) *Object {
	*o = Object{}
	o.ID = nextID()
	o.world = Identity()
	o.parent = parent
	o.driver = newChain(drivers)
	if parent != nil {
		if globalDebug {
			debugCheckDisposed(parent, "Init (parent)")
		}
		parent.objects = append(parent.objects, o)
		o.scene = parent.scene
		parent.scene.emit(SceneEvent{Type: EventObjectAttached, ObjectID: o.ID, OwnerID: parent.ID})
	}
	return o
}

// --- Accessors ---

// Parent returns the owning object, or nil for roots and detached objects.
func (o *Object) Parent() *Object {
	return o.parent
}

// Objects returns the child list. The returned slice MUST NOT be mutated by the caller.
func (o *Object) Objects() []*Object {
	return o.objects
}

// NumObjects returns the number of children.
func (o *Object) NumObjects() int {
	return len(o.objects)
}

// ObjectAt returns the child at the given index.
func (o *Object) ObjectAt(index int) *Object {
	return o.objects[index]
}

// Geometry returns the directly owned geometry. MUST NOT be mutated.
func (o *Object) Geometry() []*Geometry {
	return o.geometry
}

// Transforms returns the transform list in composition order. MUST NOT be mutated.
func (o *Object) Transforms() []*Transform {
	return o.transform
}

// World returns the cached local-to-world matrix. Only meaningful when
// IsDirty reports false.
func (o *Object) World() Mat4 {
	return o.world
}

// IsDirty reports whether World is stale.
func (o *Object) IsDirty() bool {
	return o.dirty
}

// Scene returns the scene this object was attached under, or nil.
func (o *Object) Scene() *Scene {
	return o.scene
}

// Chain returns the object's driver chain.
func (o *Object) Chain() Chain {
	return o.driver
}

// IsDisposed returns true if this object has been disposed.
func (o *Object) IsDisposed() bool {
	return o.disposed
}

// --- Tree manipulation ---

// AddObject moves sub under o. No-op if sub is already a direct child.
// sub is removed from any previous parent, which is marked dirty; o and the
// moved subtree are marked dirty and the subtree takes o's scene.
// Panics if sub is nil or o is sub or one of its descendants.
func (o *Object) AddObject(sub *Object) {
	if sub == nil {
		panic("grove: cannot add nil object")
	}
	if globalDebug {
		debugCheckDisposed(o, "AddObject (parent)")
		debugCheckDisposed(sub, "AddObject (object)")
	}
	if isAncestor(sub, o) {
		panic("grove: adding object would create a cycle")
	}
	reparent(o, sub)
	if globalDebug {
		debugCheckTreeDepth(sub)
		debugCheckChildCount(o)
	}
}

// RemoveFromParent detaches o into a parentless state. The former parent
// is marked dirty. No-op if o has no parent.
func (o *Object) RemoveFromParent() {
	reparent(nil, o)
}

// reparent is the generalized attach: p == nil only detaches.
func reparent(p, sub *Object) {
	if sub.parent == p {
		return
	}
	if old := sub.parent; old != nil {
		if old.removeObjectByPtr(sub) {
			old.SetDirty(true)
		}
		sub.parent = nil
		old.scene.emit(SceneEvent{Type: EventObjectDetached, ObjectID: sub.ID, OwnerID: old.ID})
	}
	sub.parent = p
	if p == nil {
		return
	}
	p.objects = append(p.objects, sub)
	setSubtreeScene(sub, p.scene)
	markSubtreeDirty(sub)
	p.scene.emit(SceneEvent{Type: EventObjectAttached, ObjectID: sub.ID, OwnerID: p.ID})
}

// AddGeometry attaches g to o, detaching it from its previous owner first.
// Both owners are marked dirty. No-op if o already owns g.
func (o *Object) AddGeometry(g *Geometry) {
	if g == nil {
		panic("grove: cannot add nil geometry")
	}
	if globalDebug {
		debugCheckDisposed(o, "AddGeometry")
	}
	attachGeometry(o, g)
}

// RemoveGeometry detaches g from o and marks o dirty.
// Panics if o does not own g.
func (o *Object) RemoveGeometry(g *Geometry) {
	if g.object != o {
		panic("grove: geometry is not owned by this object")
	}
	attachGeometry(nil, g)
}

func attachGeometry(o *Object, g *Geometry) {
	if g.object == o {
		return
	}
	if old := g.object; old != nil {
		if old.removeGeometryByPtr(g) {
			old.SetDirty(true)
		}
		g.object = nil
		old.scene.emit(SceneEvent{Type: EventGeometryDetached, GeometryID: g.ID, OwnerID: old.ID})
	}
	g.object = o
	if o == nil {
		return
	}
	o.geometry = append(o.geometry, g)
	o.SetDirty(true)
	o.scene.emit(SceneEvent{Type: EventGeometryAttached, GeometryID: g.ID, OwnerID: o.ID})
}

// AddTransform appends t to o's transform chain, detaching it from any
// previous owner. Both owners are marked dirty along with o's subtree.
func (o *Object) AddTransform(t *Transform) {
	if t == nil {
		panic("grove: cannot add nil transform")
	}
	if globalDebug {
		debugCheckDisposed(o, "AddTransform")
	}
	attachTransform(o, t)
}

// RemoveTransform detaches t from o's transform chain.
// Panics if o does not own t.
func (o *Object) RemoveTransform(t *Transform) {
	if t.object != o {
		panic("grove: transform is not owned by this object")
	}
	attachTransform(nil, t)
}

func attachTransform(o *Object, t *Transform) {
	if t.object == o {
		return
	}
	if old := t.object; old != nil {
		if old.removeTransformByPtr(t) {
			markSubtreeDirty(old)
		}
		t.object = nil
	}
	t.object = o
	if o == nil {
		return
	}
	o.transform = append(o.transform, t)
	markSubtreeDirty(o)
}

// --- Dirty propagation ---

// MarkDirty is SetDirty(true).
func (o *Object) MarkDirty() {
	o.SetDirty(true)
}

// SetDirty(true) marks o's geometry dirty, then o and every ancestor up to
// the root. SetDirty(false) clears o and, depth first, every child that is
// currently dirty. Geometry flags are left alone when clearing; renderers
// reset them with Geometry.MarkClean.
func (o *Object) SetDirty(dirty bool) {
	if dirty {
		for _, g := range o.geometry {
			if g != nil {
				g.dirty = true
			}
		}
		for p := o; p != nil; p = p.parent {
			p.dirty = true
		}
		return
	}
	for _, c := range o.objects {
		if c.dirty {
			c.SetDirty(false)
		}
	}
	o.dirty = false
}

// markSubtreeDirty marks node, its ancestors and all its descendants dirty.
func markSubtreeDirty(node *Object) {
	node.SetDirty(true)
	for _, c := range node.objects {
		markDescendantsDirty(c)
	}
}

// markDescendantsDirty marks node and everything beneath it without walking
// back up; the caller has already marked the ancestors.
func markDescendantsDirty(node *Object) {
	for _, g := range node.geometry {
		g.dirty = true
	}
	node.dirty = true
	for _, c := range node.objects {
		markDescendantsDirty(c)
	}
}

// --- Chain entry points ---

// Clear disposes every transform, geometry and child object o owns, leaving
// o itself attached and usable.
func (o *Object) Clear() {
	o.driver.Clear(o)
}

// Dispose clears o, detaches it from its parent (marking the parent dirty)
// and releases it. o must not be used afterwards.
func (o *Object) Dispose() {
	if o.disposed {
		return
	}
	o.Clear()
	o.driver.Dispose(o)
}

// GetGeometry appends the geometry visible in the scene's current view to
// out, in tree order, and returns the extended slice.
func (o *Object) GetGeometry(out []*Geometry) []*Geometry {
	return o.driver.GetGeometry(o, out)
}

// Project recomputes world matrices for the dirty part of o's subtree,
// with m as the parent's world matrix.
func (o *Object) Project(m Mat4) {
	o.driver.Project(o, m)
}

// --- Base driver ---

func clearObject(o *Object, next Chain) {
	for _, t := range o.transform {
		t.object = nil
		t.Dispose()
	}
	for _, g := range o.geometry {
		g.object = nil // owner is going away, skip detach
		g.Dispose()
	}
	for _, c := range o.objects {
		c.parent = nil
		c.Dispose()
	}
	o.objects = nil
	o.geometry = nil
	o.transform = nil
	next.Clear(o)
}

func disposeObject(o *Object, next Chain) {
	if p := o.parent; p != nil {
		if p.removeObjectByPtr(o) {
			p.SetDirty(true)
		}
		o.parent = nil
	}
	next.Dispose(o)
	o.scene.emit(SceneEvent{Type: EventObjectDisposed, ObjectID: o.ID})
	o.release()
}

func collectGeometry(o *Object, next Chain, out []*Geometry) []*Geometry {
	mask := ViewBit(o.scene.CurrentView())
	if o.Hidden&mask != 0 {
		return out
	}
	for _, g := range o.geometry {
		if g.Hidden&mask == 0 {
			out = append(out, g)
		}
	}
	for _, c := range o.objects {
		out = c.GetGeometry(out)
	}
	return next.GetGeometry(o, out)
}

func projectObject(o *Object, next Chain, m Mat4) {
	if !o.dirty {
		return
	}
	if o.scene != nil {
		o.scene.stats.projected++
	}
	p := m
	for _, t := range o.transform {
		p = Compose(p, t.eval())
	}
	o.world = p
	for _, g := range o.geometry {
		g.Project(p)
	}
	for _, c := range o.objects {
		c.Project(p)
	}
	o.dirty = false
	next.Project(o, m)
}

// release drops every reference o holds and marks it disposed.
func (o *Object) release() {
	o.disposed = true
	o.ID = 0
	o.objects = nil
	o.geometry = nil
	o.transform = nil
	o.parent = nil
	o.scene = nil
	o.UserData = nil
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Object) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// setSubtreeScene hands s down to node and its descendants.
func setSubtreeScene(node *Object, s *Scene) {
	node.scene = s
	for _, c := range node.objects {
		setSubtreeScene(c, s)
	}
}

// removeObjectByPtr removes child from o.objects, preserving order.
// Reports false when child was not found (stale back-reference).
func (o *Object) removeObjectByPtr(child *Object) bool {
	for i, c := range o.objects {
		if c == child {
			copy(o.objects[i:], o.objects[i+1:])
			o.objects[len(o.objects)-1] = nil
			o.objects = o.objects[:len(o.objects)-1]
			return true
		}
	}
	return false
}

func (o *Object) removeGeometryByPtr(g *Geometry) bool {
	for i, c := range o.geometry {
		if c == g {
			copy(o.geometry[i:], o.geometry[i+1:])
			o.geometry[len(o.geometry)-1] = nil
			o.geometry = o.geometry[:len(o.geometry)-1]
			return true
		}
	}
	return false
}

func (o *Object) removeTransformByPtr(t *Transform) bool {
	for i, c := range o.transform {
		if c == t {
			copy(o.transform[i:], o.transform[i+1:])
			o.transform[len(o.transform)-1] = nil
			o.transform = o.transform[:len(o.transform)-1]
			return true
		}
	}
	return false
}
