package grove

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 values that together rebuild one Transform's
// matrix. Create one via TweenTranslation, TweenScale or TweenRotation and
// call Update(dt) each frame. Every update goes through SetMatrix, so the
// owning object's subtree is marked dirty. If the transform is disposed the
// group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	values [4]float64
	build  func(v [4]float64) Mat4
	target *Transform
	Done   bool
}

// Update advances all tweens by dt seconds and applies the new matrix.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.values[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.target.SetMatrix(g.build(g.values))
}

func newTweenGroup(t *Transform, from, to []float64, duration float32, fn ease.TweenFunc, build func([4]float64) Mat4) *TweenGroup {
	g := &TweenGroup{count: len(from), target: t, build: build}
	for i := range from {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
		g.values[i] = from[i]
	}
	return g
}

// TweenTranslation animates t as a translation from its current offset to
// to. Only the translation column of t's matrix is read as the start value.
func TweenTranslation(t *Transform, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := t.matrix.Col(3).Vec3()
	return newTweenGroup(t, from[:], to[:], duration, fn, func(v [4]float64) Mat4 {
		return Translate(v[0], v[1], v[2])
	})
}

// TweenScale animates t as a scale from its current diagonal to to.
func TweenScale(t *Transform, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := t.matrix.Diag().Vec3()
	return newTweenGroup(t, from[:], to[:], duration, fn, func(v [4]float64) Mat4 {
		return Scale(v[0], v[1], v[2])
	})
}

// TweenRotation animates t as a rotation around axis from angle from to
// angle to, in radians.
func TweenRotation(t *Transform, axis Vec3, from, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(t, []float64{from}, []float64{to}, duration, fn, func(v [4]float64) Mat4 {
		return Rotate(v[0], axis)
	})
}
