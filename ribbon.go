package mockup

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

const (
	// Horizontal gap between text repetitions inside a ribbon.
	ribbonTextGap = 60
	// Vertical padding added around the text inside a ribbon.
	ribbonVerticalPad = 40
	// A ribbon strip is never shorter than this.
	ribbonMinHeight = 80
	// Hard cap on repetitions per strip. The advance guard below already
	// rules out a zero-advance loop; the cap bounds degenerate inputs
	// such as one-pixel glyphs on very wide images.
	ribbonMaxRepetitions = 10000
)

// buildRibbonTile builds one horizontal strip of repeated watermark text.
// The strip is 1.5x the target image width so a later rotation never
// exposes empty corners after cropping to the image bounds. Text repeats
// left to right, each repetition drawing a shadow copy under the main
// text, until the strip width is covered.
func buildRibbonTile(imageWidth int, text string, face font.Face, fontSize int, textColor, shadowColor color.NRGBA) *image.NRGBA {
	textWidth, textHeight := MeasureText(face, text)

	tileWidth := imageWidth * 3 / 2
	tileHeight := textHeight + ribbonVerticalPad
	if tileHeight < ribbonMinHeight {
		tileHeight = ribbonMinHeight
	}

	tile := image.NewNRGBA(image.Rect(0, 0, tileWidth, tileHeight))

	// Advance must be positive before entering the loop; text that
	// measures to zero width would otherwise never cover the strip.
	advance := textWidth + ribbonTextGap
	if textWidth <= 0 || advance <= 0 {
		return tile
	}

	shadowOffset := fontSize / 30
	if shadowOffset < 1 {
		shadowOffset = 1
	}

	y := (tileHeight - textHeight) / 2
	for x, reps := 0, 0; x < tileWidth && reps < ribbonMaxRepetitions; x, reps = x+advance, reps+1 {
		drawText(tile, text, face, x+shadowOffset, y+shadowOffset, shadowColor)
		drawText(tile, text, face, x, y, textColor)
	}

	return tile
}
