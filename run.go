package easel

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sketch is a program drawing into a Surface. The host calls Update once
// per tick and then shows the surface.
type Sketch interface {
	Surface() *Surface
	Update(dt float64) error
}

// StatusReporter is implemented by sketches that want a status line under
// the FPS counter.
type StatusReporter interface {
	Status() string
}

// RunConfig configures Run.
type RunConfig struct {
	Title            string
	Width, Height    int // window size; defaults to the surface size
	TPS              int // ticks per second; defaults to 60
	ShowFPS          bool
	Debug            bool // log frame timing to stderr once a second
	ClearColor       Color
	Script           *TestRunner // optional scripted input
	ExitOnScriptDone bool        // stop Run once Script finishes
}

// Run opens a window showing sketch's surface and blocks until the window
// is closed or the sketch's Update returns an error. The surface is
// letterboxed into the window at its own aspect ratio. If the sketch
// implements PointerHandler it receives pointer events in surface
// coordinates; if it implements ActionHandler, script action steps go to
// it.
func Run(sketch Sketch, cfg RunConfig) error {
	surf := sketch.Surface()
	if cfg.Width <= 0 {
		cfg.Width = surf.Width()
	}
	if cfg.Height <= 0 {
		cfg.Height = surf.Height()
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	g := &game{
		sketch: sketch,
		cfg:    cfg,
		tex:    ebiten.NewImage(surf.Width(), surf.Height()),
	}
	handler, _ := sketch.(PointerHandler)
	g.input = NewInput(handler, FitMapper(cfg.Width, cfg.Height, surf.Width(), surf.Height()))
	g.actions, _ = sketch.(ActionHandler)
	g.status, _ = sketch.(StatusReporter)
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if err == nil && cfg.Script != nil {
		err = cfg.Script.Err()
	}
	return err
}

// game adapts a Sketch to ebiten.Game.
type game struct {
	sketch  Sketch
	cfg     RunConfig
	tex     *ebiten.Image
	input   *Input
	actions ActionHandler
	status  StatusReporter
	fps     *fpsOverlay

	stats     frameStats
	statsTime float64
}

func (g *game) Update() error {
	start := time.Now()
	dt := 1 / float64(ebiten.TPS())

	if r := g.cfg.Script; r != nil {
		r.Step(g.input, g.actions, g.sketch.Surface())
		if r.Done() && g.cfg.ExitOnScriptDone {
			return ebiten.Termination
		}
	}
	g.input.Update()
	if err := g.sketch.Update(dt); err != nil {
		return fmt.Errorf("sketch update: %w", err)
	}
	if g.fps != nil {
		var line string
		if g.status != nil {
			line = g.status.Status()
		}
		g.fps.update(dt, line)
	}

	g.stats.updateTime += time.Since(start)
	g.statsTime += dt
	if g.cfg.Debug && g.statsTime >= 1 {
		g.stats.events = g.input.ResetEventCount()
		logFrame(g.stats)
		g.stats = frameStats{}
		g.statsTime = 0
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	start := time.Now()
	g.tex.WritePixels(g.sketch.Surface().Pixels().Pix)
	g.stats.uploadTime += time.Since(start)

	screen.Fill(g.cfg.ClearColor)
	m := g.input.Mapper
	sx, sy := m.Scale()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(m.Bounds.X, m.Bounds.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.tex, &op)

	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	surf := g.sketch.Surface()
	g.input.Mapper = FitMapper(outsideWidth, outsideHeight, surf.Width(), surf.Height())
	return outsideWidth, outsideHeight
}
