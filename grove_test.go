package grove

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Color ---

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want color.RGBA
	}{
		{"white", ColorWhite, color.RGBA{255, 255, 255, 255}},
		{"half red", Color{1, 0, 0, 0.5}, color.RGBA{127, 0, 0, 127}},
		{"clamped", Color{2, -1, 0, 1}, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.toRGBA(); got != tt.want {
				t.Errorf("toRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- ViewBit ---

func TestViewBit(t *testing.T) {
	if ViewBit(0) != 1 || ViewBit(3) != 8 || ViewBit(MaxViews-1) != 1<<15 {
		t.Error("unexpected view bits")
	}
}

// --- EventType ---

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventObjectAttached, "object-attached"},
		{EventObjectDetached, "object-detached"},
		{EventObjectDisposed, "object-disposed"},
		{EventGeometryAttached, "geometry-attached"},
		{EventGeometryDetached, "geometry-detached"},
		{EventType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

// --- BlendMode.EbitenBlend ---

func TestBlendModeEbitenBlend(t *testing.T) {
	modes := []struct {
		mode   BlendMode
		name   string
		expect ebiten.Blend
	}{
		{BlendNormal, "Normal", ebiten.BlendSourceOver},
		{BlendAdd, "Add", ebiten.BlendLighter},
		{BlendNone, "None", ebiten.BlendCopy},
	}
	for _, m := range modes {
		t.Run(m.name, func(t *testing.T) {
			if got := m.mode.EbitenBlend(); got != m.expect {
				t.Errorf("EbitenBlend() = %+v, want %+v", got, m.expect)
			}
		})
	}
	if got := BlendMultiply.EbitenBlend(); got.BlendFactorSourceRGB != ebiten.BlendFactorDestinationColor {
		t.Errorf("Multiply source factor = %v", got.BlendFactorSourceRGB)
	}
}
