package easel

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"purple", color.NRGBA{128, 0, 128, 255}},
		{"  LightGray ", color.NRGBA{211, 211, 211, 255}},
		{"#fff", color.NRGBA{255, 255, 255, 255}},
		{"#1e90ff", color.NRGBA{30, 144, 255, 255}},
		{"rgb(100, 140, 230)", color.NRGBA{100, 140, 230, 255}},
		{"rgba(0,0,230,0.4)", color.NRGBA{0, 0, 230, 102}},
		{"transparent", color.NRGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got := c.NRGBA(); got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColor_Errors(t *testing.T) {
	for _, in := range []string{
		"", "notacolor", "#12", "#zzzzzz", "rgb(1,2)", "rgba(1,2,3)",
		"rgb(300,0,0)", "rgba(0,0,0,2)", "rgb(1,2,3",
	} {
		_, err := ParseColor(in)
		if !errors.Is(err, ErrBadColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrBadColor", in, err)
		}
	}
}

func TestMustParseColor_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for bad color")
		}
	}()
	MustParseColor("nope")
}

func TestColorWithAlpha(t *testing.T) {
	c := ColorBlack.WithAlpha(0.5)
	if c.A != 0.5 || c.R != 0 {
		t.Errorf("WithAlpha = %+v", c)
	}
	if ColorBlack.A != 1 {
		t.Error("WithAlpha must not modify the receiver")
	}
}

func TestColorRGBA_Premultiplies(t *testing.T) {
	r, _, _, a := RGBA8(255, 0, 0, 0.5).RGBA()
	if a < 0x7f00 || a > 0x8100 {
		t.Errorf("alpha = %#x, want ~0x8000", a)
	}
	if r != a {
		t.Errorf("red = %#x, want premultiplied %#x", r, a)
	}
}
