package mockup

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// rotateTile rotates a ribbon tile counter-clockwise by the given angle in
// degrees, expanding the canvas so no rotated content is clipped. Angle 0
// returns the tile untouched.
func rotateTile(tile *image.NRGBA, angleDegrees int) *image.NRGBA {
	if angleDegrees == 0 {
		return tile
	}
	return imaging.Rotate(tile, float64(angleDegrees), color.NRGBA{})
}

// placeRibbon pastes a (possibly rotated) tile onto the overlay at x=0,
// vertically centered on centerY and clamped so the tile never extends
// above the top or below the bottom edge. Tiles are built wide enough to
// span the full image width, so no horizontal placement is needed.
func placeRibbon(overlay *image.NRGBA, tile *image.NRGBA, centerY int) *image.NRGBA {
	imageHeight := overlay.Bounds().Dy()
	tileHeight := tile.Bounds().Dy()

	y := centerY - tileHeight/2
	if y > imageHeight-tileHeight {
		y = imageHeight - tileHeight
	}
	if y < 0 {
		y = 0
	}

	return imaging.Overlay(overlay, tile, image.Pt(0, y), 1.0)
}
