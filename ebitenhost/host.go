// Package ebitenhost drives a tween.Scheduler from an Ebitengine game loop.
//
// The simplest setup hands everything to [Run]:
//
//	sched := tween.NewScheduler(tween.DefaultConfig())
//	// create and Play tweens...
//	err := ebitenhost.Run(sched, ebitenhost.RunConfig{
//		Title:   "Demo",
//		Width:   640,
//		Height:  480,
//		ShowFPS: true,
//	}, nil, draw)
//
// Games that already implement ebiten.Game can embed a [Game] or call
// Scheduler.Update themselves with [FrameDelta].
package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/tween"
)

// fpsRefreshInterval is how often, in seconds, the FPS overlay text is
// rebuilt.
const fpsRefreshInterval = 0.5

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// Game adapts a Scheduler to ebiten.Game. Each tick advances the scheduler
// by one fixed frame and then calls UpdateFunc; each frame calls DrawFunc
// and, if ShowFPS is set, draws an FPS/TPS overlay on top.
type Game struct {
	Scheduler  *tween.Scheduler
	UpdateFunc func() error
	DrawFunc   func(screen *ebiten.Image)

	Width, Height int
	ShowFPS       bool

	overlay      *ebiten.Image
	sinceRefresh float64
	fpsText      string
}

// NewGame returns a Game driving s with the size and overlay settings from
// cfg. update and draw may be nil.
func NewGame(s *tween.Scheduler, cfg RunConfig, update func() error, draw func(*ebiten.Image)) *Game {
	return &Game{
		Scheduler:    s,
		UpdateFunc:   update,
		DrawFunc:     draw,
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFPS:      cfg.ShowFPS,
		sinceRefresh: fpsRefreshInterval,
	}
}

// FrameDelta returns the duration of one tick in seconds.
func FrameDelta() float64 {
	return 1.0 / float64(ebiten.TPS())
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	return g.step(FrameDelta())
}

func (g *Game) step(dt float64) error {
	if g.Scheduler != nil {
		g.Scheduler.Update(dt)
	}
	if g.ShowFPS {
		g.sinceRefresh += dt
		if g.sinceRefresh >= fpsRefreshInterval {
			g.sinceRefresh = 0
			g.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
	}
	if g.UpdateFunc != nil {
		return g.UpdateFunc()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.DrawFunc != nil {
		g.DrawFunc(screen)
	}
	if g.ShowFPS && g.fpsText != "" {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		if g.overlay == nil {
			g.overlay = ebiten.NewImage(100, 32)
		}
		g.overlay.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(g.overlay, g.fpsText)
		screen.DrawImage(g.overlay, nil)
	}
}

// Layout implements ebiten.Game. A zero configured size follows the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Width <= 0 || g.Height <= 0 {
		return outsideWidth, outsideHeight
	}
	return g.Width, g.Height
}

// Run opens a window and runs s until the window closes or update returns
// an error. It blocks, and must be called from the main goroutine.
func Run(s *tween.Scheduler, cfg RunConfig, update func() error, draw func(*ebiten.Image)) error {
	if s == nil {
		return tween.ErrNoScheduler
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	return ebiten.RunGame(NewGame(s, cfg, update, draw))
}

// ColorScale converts a tween.Color into the premultiplied color scale used
// by ebiten.DrawImageOptions.
func ColorScale(c tween.Color) ebiten.ColorScale {
	var cs ebiten.ColorScale
	a := float32(c.A)
	cs.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	return cs
}
