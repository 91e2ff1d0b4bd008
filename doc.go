// Package easel is an immediate-mode 2D drawing toolkit with an
// interactive regular-polygon editor, hosted on [Ebitengine].
//
// Drawing happens on a [Surface], a CPU pixel buffer with a canvas-style
// API (paths, arcs, arc-to corners, gradients, text) rasterized by [gg].
// Surfaces can be snapshotted and restored byte for byte, which is how the
// editor redraws rubberband previews without flicker.
//
// # Quick start
//
// [Run] opens a window for any [Sketch] and shows its surface each frame:
//
//	surf := easel.NewSurface(600, 400)
//	ed := easel.NewEditor(surf, easel.DefaultSettings())
//	easel.Run(ed, easel.RunConfig{Title: "Polygons"})
//
// # Polygon editor
//
// An [Editor] owns a [Scene] of [Polygon] values. With editing off, a
// press-drag-release creates a polygon centered on the press point with
// its radius set by the drag distance. With editing on, pressing inside a
// polygon selects it; it then turns to follow the pointer until the next
// press commits the rotation. Holding Shift snaps the rotation to
// [SnapStep] increments. Controls live in [Settings] and can be changed
// with [Editor.HandleAction].
//
// Editor events can be observed through an [EventSink]; the ecs
// submodule forwards them into a [Donburi] world.
//
// # Scripted runs
//
// [LoadTestScript] reads a JSON list of pointer, action and screenshot
// steps. Run plays it against a window; cmd/easelscript plays it
// headlessly and writes PNGs.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/fogleman/gg
// [Donburi]: https://github.com/yohamta/donburi
package easel
