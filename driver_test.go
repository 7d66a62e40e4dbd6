package grove

import (
	"reflect"
	"testing"
)

func TestChainEndsWithObjectDriver(t *testing.T) {
	d1, d2 := &Driver{}, &Driver{}
	o := NewObject(nil, d1, nil, d2)
	want := Chain{d1, d2, ObjectDriver}
	if !reflect.DeepEqual(o.Chain(), want) {
		t.Errorf("Chain = %v, want %v", o.Chain(), want)
	}
}

func TestDriverFallThrough(t *testing.T) {
	// A table with no entries defers everything to the base.
	o := NewObject(nil, &Driver{})
	o.AddTransform(NewTranslation(1, 2, 3))
	o.Project(Identity())
	assertMatrix(t, "world", o.World(), Translate(1, 2, 3))
	if o.IsDirty() {
		t.Error("base project should have run")
	}
}

func TestDriverInheritedOrder(t *testing.T) {
	var calls []string
	outer := &Driver{
		Project: func(o *Object, next Chain, m Mat4) {
			calls = append(calls, "outer")
			next.Project(o, m)
		},
	}
	middle := &Driver{Clear: func(o *Object, next Chain) { next.Clear(o) }}
	inner := &Driver{
		Project: func(o *Object, next Chain, m Mat4) {
			calls = append(calls, "inner")
			next.Project(o, m)
			calls = append(calls, "inner-after")
		},
	}
	o := NewObject(nil, outer, middle, inner)
	o.MarkDirty()
	o.Project(Identity())

	want := []string{"outer", "inner", "inner-after"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
	if o.IsDirty() {
		t.Error("base project should have cleared dirty")
	}
}

func TestDriverOverrideWithoutInherited(t *testing.T) {
	skip := &Driver{
		Project: func(o *Object, next Chain, m Mat4) {},
	}
	o := NewObject(nil, skip)
	o.MarkDirty()
	o.Project(Identity())
	if !o.IsDirty() {
		t.Error("base project should not run when the override skips it")
	}
}

func TestDriverGetGeometryOverride(t *testing.T) {
	extra := NewQuad("extra", 1, 1)
	d := &Driver{
		GetGeometry: func(o *Object, next Chain, out []*Geometry) []*Geometry {
			out = append(out, extra)
			return next.GetGeometry(o, out)
		},
	}
	o := NewObject(nil, d)
	own := NewQuad("own", 1, 1)
	o.AddGeometry(own)

	got := o.GetGeometry(nil)
	if len(got) != 2 || got[0] != extra || got[1] != own {
		t.Errorf("got %v, want [extra own]", names(got))
	}
}

// Children dispatch through their own chain, not the parent's.
func TestDriverDispatchPerObject(t *testing.T) {
	var projected []string
	trace := &Driver{
		Project: func(o *Object, next Chain, m Mat4) {
			projected = append(projected, o.Name)
			next.Project(o, m)
		},
	}
	root := named(nil, "root")
	plain := named(root, "plain")
	traced := NewObject(root, trace)
	traced.Name = "traced"
	plain.MarkDirty()
	traced.MarkDirty()

	root.Project(Identity())
	if !reflect.DeepEqual(projected, []string{"traced"}) {
		t.Errorf("projected = %v", projected)
	}
}

func TestDriverDisposeAndClear(t *testing.T) {
	var calls []string
	d := &Driver{
		Clear: func(o *Object, next Chain) {
			calls = append(calls, "clear")
			next.Clear(o)
		},
		Dispose: func(o *Object, next Chain) {
			calls = append(calls, "dispose")
			if o.Parent() == nil {
				t.Error("override should run before the base detaches")
			}
			next.Dispose(o)
		},
	}
	p := named(nil, "p")
	o := NewObject(p, d)
	o.Dispose()

	if !reflect.DeepEqual(calls, []string{"clear", "dispose"}) {
		t.Errorf("calls = %v", calls)
	}
	if p.NumObjects() != 0 || !o.IsDisposed() {
		t.Error("base dispose should have run")
	}
}

func TestEmptyChainIsNoop(t *testing.T) {
	var c Chain
	o := NewObject(nil)
	o.MarkDirty()
	c.Project(o, Identity())
	c.Clear(o)
	c.Dispose(o)
	out := []*Geometry{NewQuad("q", 1, 1)}
	if got := c.GetGeometry(o, out); len(got) != 1 {
		t.Error("empty chain should return out unchanged")
	}
	if !o.IsDirty() || o.IsDisposed() {
		t.Error("empty chain should not touch the object")
	}
}
