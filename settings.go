package easel

// Settings are the editor's global controls. The editor reads them on
// every pointer event, so changes apply to the next preview without any
// notification.
type Settings struct {
	StrokeStyle Color
	FillStyle   Color
	Sides       int
	StartAngle  float64 // degrees
	Fill        bool
	Guidewires  bool
}

// DefaultSettings returns the controls' initial state.
func DefaultSettings() Settings {
	return Settings{
		StrokeStyle: StrokePalette[0],
		FillStyle:   FillPalette[0],
		Sides:       8,
		StartAngle:  0,
		Fill:        false,
		Guidewires:  true,
	}
}

// Style returns the global paint style.
func (s Settings) Style() Style {
	return Style{Stroke: s.StrokeStyle, Fill: s.FillStyle, Filled: s.Fill}
}

// StartAngleRadians returns StartAngle converted to radians.
func (s Settings) StartAngleRadians() float64 {
	return Radians(s.StartAngle)
}

// Choices offered by the polygon editor's controls. Hosts cycle through
// them.
var (
	StrokePalette = []Color{
		MustParseColor("purple"),
		MustParseColor("red"),
		MustParseColor("orange"),
		MustParseColor("goldenrod"),
		MustParseColor("navy"),
		MustParseColor("blue"),
		MustParseColor("black"),
	}
	FillPalette = []Color{
		MustParseColor("rgba(100,140,230,0.5)"),
		MustParseColor("rgba(255,0,0,0.5)"),
		MustParseColor("rgba(255,165,0,0.5)"),
		MustParseColor("rgba(218,165,32,0.5)"),
		MustParseColor("rgba(0,0,128,0.5)"),
		MustParseColor("rgba(0,0,255,0.5)"),
		MustParseColor("rgba(0,0,0,0.5)"),
	}
	SideChoices = []int{3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	StartAngles = []float64{0, 22.5, 45, 67.5, 90}
)

// nextIndex returns the index after the entry equal to cur, wrapping. An
// unknown cur yields 0.
func nextIndex[T comparable](list []T, cur T) int {
	for i, v := range list {
		if v == cur {
			return (i + 1) % len(list)
		}
	}
	return 0
}

// CycleStroke advances StrokeStyle through StrokePalette.
func (s *Settings) CycleStroke() {
	s.StrokeStyle = StrokePalette[nextIndex(StrokePalette, s.StrokeStyle)]
}

// CycleFill advances FillStyle through FillPalette.
func (s *Settings) CycleFill() {
	s.FillStyle = FillPalette[nextIndex(FillPalette, s.FillStyle)]
}

// CycleStartAngle advances StartAngle through StartAngles.
func (s *Settings) CycleStartAngle() {
	s.StartAngle = StartAngles[nextIndex(StartAngles, s.StartAngle)]
}
