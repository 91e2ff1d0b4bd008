package easel

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	goRegularOnce sync.Once
	goRegular     *opentype.Font
	goRegularErr  error

	faceMu    sync.Mutex
	faceCache = map[float64]font.Face{}
)

func parseGoRegular() (*opentype.Font, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = opentype.Parse(goregular.TTF)
	})
	return goRegular, goRegularErr
}

// NewFace returns a Go Regular face at size points (72 DPI, so points equal
// pixels). Faces are cached per size and shared; callers must not Close
// them.
func NewFace(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("new face: size %v must be positive", size)
	}
	faceMu.Lock()
	defer faceMu.Unlock()
	if f, ok := faceCache[size]; ok {
		return f, nil
	}
	ft, err := parseGoRegular()
	if err != nil {
		return nil, fmt.Errorf("new face: parse go regular: %w", err)
	}
	f, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	faceCache[size] = f
	return f, nil
}

// FaceOrDefault is NewFace falling back to the fixed 7x13 bitmap face. The
// error is reported on stderr.
func FaceOrDefault(size float64) font.Face {
	f, err := NewFace(size)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[easel] font: %v, using basicfont\n", err)
		return basicfont.Face7x13
	}
	return f
}
