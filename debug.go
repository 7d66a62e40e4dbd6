package grove

import (
	"fmt"
	"time"
)

// frameStats holds per-frame metrics. Timings are only populated when
// Scene.debug is true.
type frameStats struct {
	projected   int // objects recomputed by the last Update
	collected   int // geometry collected over all views by the last Draw
	drawCalls   int
	projectTime time.Duration
	drawTime    time.Duration
}

// Projected returns how many objects the last Update recomputed. Zero means
// the tree was already clean.
func (s *Scene) Projected() int {
	return s.stats.projected
}

// debugLog writes the frame stats at debug level.
func (s *Scene) debugLog() {
	if !s.debug {
		return
	}
	st := s.stats
	Logger().Debug("grove frame",
		"project", st.projectTime,
		"draw", st.drawTime,
		"projected", st.projected,
		"collected", st.collected,
		"drawCalls", st.drawCalls,
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed
// object is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(o *Object, op string) {
	if o.disposed {
		panic(fmt.Sprintf("grove debug: %s on disposed object %q", op, o.Name))
	}
}

// debugMaxTreeDepth is where recursion in Project and GetGeometry starts to
// be worth a warning.
const debugMaxTreeDepth = 64

func debugCheckTreeDepth(o *Object) {
	depth := 0
	for p := o; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("grove: tree depth exceeds threshold",
			"object", o.Name, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

const debugMaxChildCount = 1000

func debugCheckChildCount(o *Object) {
	if len(o.objects) > debugMaxChildCount {
		Logger().Warn("grove: child count exceeds threshold",
			"object", o.Name, "children", len(o.objects), "threshold", debugMaxChildCount)
	}
}
