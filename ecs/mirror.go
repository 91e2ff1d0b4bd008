package ecs

import (
	"slices"

	"github.com/phanxgames/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// PolygonData mirrors one polygon of an editor scene.
type PolygonData struct {
	Index      int // draw order position in the scene
	X, Y       float64
	Radius     float64
	Sides      int
	StartAngle float64
}

// Polygon is the component carrying PolygonData.
var Polygon = donburi.NewComponentType[PolygonData]()

var polygonQuery = donburi.NewQuery(filter.Contains(Polygon))

// InstallMirror subscribes to EditorEventType so that, as events are
// processed, the world holds one Polygon entity per scene polygon.
func InstallMirror(world donburi.World) {
	EditorEventType.Subscribe(world, applyEvent)
}

func applyEvent(w donburi.World, ev easel.EditorEvent) {
	switch ev.Type {
	case easel.EventShapeCreated:
		e := w.Create(Polygon)
		Polygon.SetValue(w.Entry(e), dataFromEvent(ev))
	case easel.EventShapeRotated:
		if entry := findPolygon(w, ev.Index); entry != nil {
			Polygon.Get(entry).StartAngle = ev.StartAngle
		}
	case easel.EventSceneCleared:
		var doomed []donburi.Entity
		polygonQuery.Each(w, func(entry *donburi.Entry) {
			doomed = append(doomed, entry.Entity())
		})
		for _, e := range doomed {
			w.Remove(e)
		}
	}
}

func dataFromEvent(ev easel.EditorEvent) PolygonData {
	return PolygonData{
		Index:      ev.Index,
		X:          ev.X,
		Y:          ev.Y,
		Radius:     ev.Radius,
		Sides:      ev.Sides,
		StartAngle: ev.StartAngle,
	}
}

func findPolygon(w donburi.World, index int) *donburi.Entry {
	var found *donburi.Entry
	polygonQuery.Each(w, func(entry *donburi.Entry) {
		if found == nil && Polygon.Get(entry).Index == index {
			found = entry
		}
	})
	return found
}

// PolygonCount returns the number of mirrored polygons in world.
func PolygonCount(world donburi.World) int {
	return polygonQuery.Count(world)
}

// Polygons returns the mirrored polygons ordered by scene index.
func Polygons(world donburi.World) []PolygonData {
	var out []PolygonData
	polygonQuery.Each(world, func(entry *donburi.Entry) {
		out = append(out, *Polygon.Get(entry))
	})
	slices.SortFunc(out, func(a, b PolygonData) int { return a.Index - b.Index })
	return out
}
