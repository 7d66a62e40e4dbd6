package grove

// Driver is an override table for the four overridable object operations.
// Any field may be nil, in which case dispatch falls through to the next
// table in the object's Chain.
//
// Every function receives next, the tables that follow it. Calling the same
// operation on next runs the inherited implementation:
//
//	logged := &grove.Driver{
//		Project: func(o *grove.Object, next grove.Chain, m grove.Mat4) {
//			log.Println("projecting", o.Name)
//			next.Project(o, m)
//		},
//	}
//	obj := grove.NewObject(parent, logged)
type Driver struct {
	Clear       func(o *Object, next Chain)
	Dispose     func(o *Object, next Chain)
	GetGeometry func(o *Object, next Chain, out []*Geometry) []*Geometry
	Project     func(o *Object, next Chain, m Mat4)
}

// Chain is an ordered list of driver tables, most-derived first. The end of
// the slice terminates the chain: dispatch past it is a no-op.
type Chain []*Driver

// ObjectDriver is the base table installed at the end of every object's chain.
var ObjectDriver = &Driver{
	Clear:       clearObject,
	Dispose:     disposeObject,
	GetGeometry: collectGeometry,
	Project:     projectObject,
}

// baseChain is shared by every object constructed without overrides.
var baseChain = Chain{ObjectDriver}

// newChain builds drivers followed by the base table.
func newChain(drivers []*Driver) Chain {
	if len(drivers) == 0 {
		return baseChain
	}
	c := make(Chain, 0, len(drivers)+1)
	for _, d := range drivers {
		if d != nil {
			c = append(c, d)
		}
	}
	return append(c, ObjectDriver)
}

// Clear runs the first Clear entry in the chain.
func (c Chain) Clear(o *Object) {
	for i, d := range c {
		if d.Clear != nil {
			d.Clear(o, c[i+1:])
			return
		}
	}
}

// Dispose runs the first Dispose entry in the chain.
func (c Chain) Dispose(o *Object) {
	for i, d := range c {
		if d.Dispose != nil {
			d.Dispose(o, c[i+1:])
			return
		}
	}
}

// GetGeometry runs the first GetGeometry entry in the chain. Returns out
// unchanged when no table supplies one.
func (c Chain) GetGeometry(o *Object, out []*Geometry) []*Geometry {
	for i, d := range c {
		if d.GetGeometry != nil {
			return d.GetGeometry(o, c[i+1:], out)
		}
	}
	return out
}

// Project runs the first Project entry in the chain.
func (c Chain) Project(o *Object, m Mat4) {
	for i, d := range c {
		if d.Project != nil {
			d.Project(o, c[i+1:], m)
			return
		}
	}
}
