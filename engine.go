package mockup

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Engine applies a watermark Spec to images. It never mutates its input;
// every call returns a fresh opaque buffer.
type Engine struct {
	fonts *FontSource
}

// NewEngine constructs an Engine using the default font candidates.
func NewEngine() *Engine {
	return &Engine{fonts: NewFontSource()}
}

// NewEngineWithFonts constructs an Engine with a custom font source.
func NewEngineWithFonts(fonts *FontSource) *Engine {
	if fonts == nil {
		fonts = NewFontSource()
	}
	return &Engine{fonts: fonts}
}

// Apply renders the watermark described by spec over img and returns the
// flattened result. StyleNone returns an opaque clone of the input.
func (e *Engine) Apply(img image.Image, spec Spec) (*image.NRGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image provided")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	base := imaging.Clone(img)

	switch spec.Style {
	case StyleNone:
		return base, nil
	case StyleCenter:
		return e.applyCenter(base, spec)
	case StyleRibbon:
		return e.applyRibbon(base, spec)
	default:
		return nil, fmt.Errorf("unknown watermark style %d", spec.Style)
	}
}

// applyCenter draws a single shadowed watermark at the image center on a
// transparent overlay, then composites the overlay onto the base once.
func (e *Engine) applyCenter(base *image.NRGBA, spec Spec) (*image.NRGBA, error) {
	width := base.Bounds().Dx()
	height := base.Bounds().Dy()

	fontSize := int(float64(width) * 0.05)
	if fontSize < 30 {
		fontSize = 30
	}

	face, err := e.fonts.Face(fontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	textWidth, textHeight := MeasureText(face, spec.Text)
	x := (width - textWidth) / 2
	y := (height - textHeight) / 2

	shadowOffset := fontSize / 20
	if shadowOffset < 2 {
		shadowOffset = 2
	}

	overlay := image.NewNRGBA(image.Rect(0, 0, width, height))
	drawText(overlay, spec.Text, face, x+shadowOffset, y+shadowOffset,
		color.NRGBA{A: uint8(spec.Opacity / 2)})
	drawText(overlay, spec.Text, face, x, y,
		color.NRGBA{R: 255, G: 255, B: 255, A: uint8(spec.Opacity)})

	return imaging.Overlay(base, overlay, image.Pt(0, 0), 1.0), nil
}

// applyRibbon builds one tile per ribbon and places them on a shared
// overlay at evenly spaced vertical centers, compositing onto the base
// exactly once after all ribbons are placed.
func (e *Engine) applyRibbon(base *image.NRGBA, spec Spec) (*image.NRGBA, error) {
	width := base.Bounds().Dx()
	height := base.Bounds().Dy()

	fontSize := int(float64(width) * 0.025)
	if fontSize < 20 {
		fontSize = 20
	}

	face, err := e.fonts.Face(fontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	textColor := color.NRGBA{R: 255, G: 255, B: 255, A: uint8(spec.Opacity)}
	shadowColor := color.NRGBA{A: uint8(spec.Opacity / 3)}

	verticalSpacing := height / (spec.RibbonCount + 1)

	overlay := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < spec.RibbonCount; i++ {
		tile := buildRibbonTile(width, spec.Text, face, fontSize, textColor, shadowColor)
		tile = rotateTile(tile, spec.AngleDegrees)
		overlay = placeRibbon(overlay, tile, verticalSpacing*(i+1))
	}

	return imaging.Overlay(base, overlay, image.Pt(0, 0), 1.0), nil
}
