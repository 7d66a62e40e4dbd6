package grove

// Transform is one matrix-producing element of an object's local transform.
// An object composes its transforms in order: the first is applied last to
// a vertex, nearest the parent.
type Transform struct {
	// Identity
	ID   uint32
	Name string

	// OnDispose is called once when the transform is disposed.
	OnDispose func(t *Transform)

	matrix   Mat4
	object   *Object
	evals    int // projections that read this transform
	disposed bool
}

// NewTransform creates a transform producing m.
func NewTransform(m Mat4) *Transform {
	return &Transform{ID: nextID(), matrix: m}
}

// NewTranslation creates a translation transform.
func NewTranslation(x, y, z float64) *Transform {
	return NewTransform(Translate(x, y, z))
}

// NewScale creates a scale transform.
func NewScale(x, y, z float64) *Transform {
	return NewTransform(Scale(x, y, z))
}

// NewRotation creates a rotation of angle radians around axis.
func NewRotation(angle float64, axis Vec3) *Transform {
	return NewTransform(Rotate(angle, axis))
}

// Matrix returns the transform's matrix.
func (t *Transform) Matrix() Mat4 {
	return t.matrix
}

// SetMatrix replaces the matrix and marks the owning object and its
// subtree dirty, since every descendant world matrix depends on it.
func (t *Transform) SetMatrix(m Mat4) {
	if t.matrix == m {
		return
	}
	t.matrix = m
	if t.object != nil {
		markSubtreeDirty(t.object)
	}
}

// Object returns the owning object, or nil when detached.
func (t *Transform) Object() *Object {
	return t.object
}

// IsDisposed returns true if this transform has been disposed.
func (t *Transform) IsDisposed() bool {
	return t.disposed
}

// Dispose detaches t from its owner and releases it.
func (t *Transform) Dispose() {
	if t.disposed {
		return
	}
	if t.object != nil {
		attachTransform(nil, t)
	}
	t.disposed = true
	if t.OnDispose != nil {
		t.OnDispose(t)
	}
	t.OnDispose = nil
}

// eval returns the matrix for projection and counts the read.
func (t *Transform) eval() Mat4 {
	t.evals++
	return t.matrix
}

// --- Coordinate conversion ---

// LocalToWorld converts a point in o's local space to world space using the
// cached world matrix.
func (o *Object) LocalToWorld(p Vec3) Vec3 {
	return TransformPoint(o.world, p)
}

// WorldToLocal converts a world-space point into o's local space. Returns p
// unchanged when the world matrix is singular.
func (o *Object) WorldToLocal(p Vec3) Vec3 {
	if det := o.world.Det(); det > -1e-12 && det < 1e-12 {
		return p
	}
	return TransformPoint(o.world.Inv(), p)
}
