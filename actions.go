package easel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownAction is returned by HandleAction for names it does not know.
var ErrUnknownAction = errors.New("easel: unknown action")

// HandleAction applies a named control change, standing in for the
// editor's checkboxes, selects and buttons. Recognized names:
//
//	edit             toggle editing mode
//	edit-on          editing mode on
//	edit-off         editing mode off
//	fill             toggle the fill checkbox
//	guidewires       toggle guidewires
//	erase            erase all polygons
//	sides=N          side count, N >= 3
//	angle=DEG        start angle in degrees
//	stroke=COLOR     stroke color (CSS syntax)
//	fillstyle=COLOR  fill color (CSS syntax)
func (e *Editor) HandleAction(action string) error {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(action), "=")
	switch {
	case name == "edit" && !hasArg:
		e.SetEditing(!e.editing)
	case name == "edit-on" && !hasArg:
		e.SetEditing(true)
	case name == "edit-off" && !hasArg:
		e.SetEditing(false)
	case name == "fill" && !hasArg:
		e.settings.Fill = !e.settings.Fill
	case name == "guidewires" && !hasArg:
		e.settings.Guidewires = !e.settings.Guidewires
	case name == "erase" && !hasArg:
		e.EraseAll()
	case name == "sides" && hasArg:
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("action %q: %w", action, err)
		}
		if n < MinSides {
			return fmt.Errorf("action %q: sides must be at least %d", action, MinSides)
		}
		e.settings.Sides = n
	case name == "angle" && hasArg:
		deg, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("action %q: %w", action, err)
		}
		e.settings.StartAngle = deg
	case name == "stroke" && hasArg:
		c, err := ParseColor(arg)
		if err != nil {
			return fmt.Errorf("action %q: %w", action, err)
		}
		e.settings.StrokeStyle = c
	case name == "fillstyle" && hasArg:
		c, err := ParseColor(arg)
		if err != nil {
			return fmt.Errorf("action %q: %w", action, err)
		}
		e.settings.FillStyle = c
	default:
		return fmt.Errorf("action %q: %w", action, ErrUnknownAction)
	}
	e.debugLog("action %s", action)
	return nil
}
