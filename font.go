package mockup

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultFontCandidates is the ordered list of font files probed before
// falling back to the built-in Go Regular face. The first candidate that
// exists and parses wins.
var DefaultFontCandidates = []string{
	"/System/Library/Fonts/Helvetica.ttc",
	"/System/Library/Fonts/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/arial.ttf",
	"C:/Windows/Fonts/arial.ttf",
}

// FontSource resolves and caches the watermark font. Resolution probes the
// candidate list once per process; every Face call reuses the parsed font,
// so repeated measurements within a run are identical.
type FontSource struct {
	candidates []string

	once     sync.Once
	parsed   *opentype.Font
	parseErr error
}

// NewFontSource creates a FontSource probing the given candidate files in
// order. With no candidates the default list is used.
func NewFontSource(candidates ...string) *FontSource {
	if len(candidates) == 0 {
		candidates = DefaultFontCandidates
	}
	return &FontSource{candidates: candidates}
}

// resolve picks the first loadable candidate, falling back to the embedded
// Go Regular font. Unreadable or unparsable candidates are skipped, so the
// fallback makes resolution effectively infallible.
func (s *FontSource) resolve() (*opentype.Font, error) {
	s.once.Do(func() {
		for _, path := range s.candidates {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			parsed, err := opentype.Parse(data)
			if err != nil {
				continue
			}
			s.parsed = parsed
			return
		}

		s.parsed, s.parseErr = opentype.Parse(goregular.TTF)
	})

	return s.parsed, s.parseErr
}

// Face returns a rendering face at the given pixel size.
func (s *FontSource) Face(size int) (font.Face, error) {
	parsed, err := s.resolve()
	if err != nil {
		return nil, fmt.Errorf("resolve watermark font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face at size %d: %w", size, err)
	}
	return face, nil
}

// MeasureText returns the tight rendered bounding box of text in pixels.
// When the tight bounds are empty (whitespace-only strings), it falls back
// to the coarser advance-width and face-metrics extent. The zero pair is
// returned only for text that draws nothing at all.
func MeasureText(face font.Face, text string) (width, height int) {
	bounds, advance := font.BoundString(face, text)
	width = (bounds.Max.X - bounds.Min.X).Ceil()
	height = (bounds.Max.Y - bounds.Min.Y).Ceil()

	if width <= 0 || height <= 0 {
		metrics := face.Metrics()
		width = advance.Ceil()
		height = (metrics.Ascent + metrics.Descent).Ceil()
		if advance == 0 {
			width, height = 0, 0
		}
	}
	return width, height
}

// drawText renders text so that its tight bounding box lands with its
// top-left corner at (x, y). The drawer's dot is a baseline position, so
// the string bounds offset the anchor.
func drawText(dst draw.Image, text string, face font.Face, x, y int, col color.NRGBA) {
	bounds, _ := font.BoundString(face, text)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x-bounds.Min.X.Floor(), y-bounds.Min.Y.Floor()),
	}
	d.DrawString(text)
}
