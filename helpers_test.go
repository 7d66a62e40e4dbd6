package grove

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Mat4) {
	t.Helper()
	if !got.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec3) {
	t.Helper()
	if !got.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// assertSymmetric walks the tree under o and checks both directions of the
// parent/child and geometry/owner links.
func assertSymmetric(t *testing.T, o *Object) {
	t.Helper()
	for _, c := range o.objects {
		if c.parent != o {
			t.Errorf("child %q of %q has parent %v", c.Name, o.Name, c.parent)
		}
		n := 0
		for _, other := range o.objects {
			if other == c {
				n++
			}
		}
		if n != 1 {
			t.Errorf("child %q appears %d times under %q", c.Name, n, o.Name)
		}
		assertSymmetric(t, c)
	}
	for _, g := range o.geometry {
		if g.object != o {
			t.Errorf("geometry %q of %q has owner %v", g.Name, o.Name, g.object)
		}
	}
}

func named(parent *Object, name string) *Object {
	o := NewObject(parent)
	o.Name = name
	return o
}
