package easel

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing collected by the Run host.
// Only reported when RunConfig.Debug is set.
type frameStats struct {
	updateTime time.Duration
	uploadTime time.Duration
	events     int
}

// debugLog prints an editor trace line to stderr when debug mode is on.
func (e *Editor) debugLog(format string, args ...any) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[easel] "+format+"\n", args...)
	debugCheckSceneSize(e.scene)
}

// debugMaxPolygons is the scene size past which debug mode warns that
// full redraws will get slow.
const debugMaxPolygons = 1000

func debugCheckSceneSize(sc *Scene) {
	if sc.Len() > debugMaxPolygons {
		_, _ = fmt.Fprintf(os.Stderr, "[easel] warning: scene has %d polygons (threshold %d)\n",
			sc.Len(), debugMaxPolygons)
	}
}

// logFrame prints frame timing to stderr.
func logFrame(stats frameStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[easel] update: %v | upload: %v | pointer events: %d\n",
		stats.updateTime, stats.uploadTime, stats.events)
}
