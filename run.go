package grove

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Resizable lets the user resize the window; views with an empty
	// viewport follow the new size.
	Resizable bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	w, h  int
}

func (g *game) Update() error {
	s := g.scene
	if s.updateFn != nil {
		if err := s.updateFn(); err != nil {
			return err
		}
	}
	dt := float32(1.0 / float64(ebiten.TPS()))
	for _, v := range s.views {
		v.Update(dt)
	}
	s.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideW, outsideH int) (int, int) {
	if g.w > 0 && g.h > 0 {
		return g.w, g.h
	}
	return outsideW, outsideH
}

// Run opens a window and drives scene until the window closes or the update
// function returns an error. Each tick runs the update function, advances
// view animations, projects the tree and draws every view.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	g := &game{scene: scene}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		g.w, g.h = cfg.Width, cfg.Height
	}
	return ebiten.RunGame(g)
}
