package easel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay displays FPS, TPS and an optional status line in the window
// corner. The text is re-rendered every ~0.5 seconds.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	status     string
}

func newFPSOverlay() *fpsOverlay {
	// 320x48 holds "FPS: 60.0\nTPS: 60.0" plus one status line.
	return &fpsOverlay{img: ebiten.NewImage(320, 48), lastUpdate: 1}
}

func (o *fpsOverlay) update(dt float64, status string) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 && status == o.status {
		return
	}
	o.lastUpdate = 0
	o.status = status

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})

	msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if status != "" {
		msg += "\n" + status
	}
	ebitenutil.DebugPrint(o.img, msg)
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
