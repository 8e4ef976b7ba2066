package mockup

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/disintegration/imaging"
)

// Angle zero must be a strict identity: no resampling, no shape change.
func TestRotateTileZeroAngle(t *testing.T) {
	tile := image.NewNRGBA(image.Rect(0, 0, 300, 80))

	got := rotateTile(tile, 0)
	if got != tile {
		t.Fatalf("expected the unrotated tile to be returned unchanged")
	}
}

// A rotated tile's bounding box must contain the rotated corners of the
// original, i.e. match the w*cos+h*sin expansion.
func TestRotateTileExpandsBounds(t *testing.T) {
	const w, h = 300, 80

	for _, angle := range []int{-45, -15, 15, 30, 45} {
		tile := image.NewNRGBA(image.Rect(0, 0, w, h))
		rotated := rotateTile(tile, angle)

		rad := math.Abs(float64(angle)) * math.Pi / 180
		wantW := int(math.Abs(w*math.Cos(rad)) + math.Abs(h*math.Sin(rad)))
		wantH := int(math.Abs(w*math.Sin(rad)) + math.Abs(h*math.Cos(rad)))

		gotW := rotated.Bounds().Dx()
		gotH := rotated.Bounds().Dy()
		if gotW < wantW || gotH < wantH {
			t.Fatalf("angle %d: rotated bounds %dx%d smaller than expansion %dx%d",
				angle, gotW, gotH, wantW, wantH)
		}
		if gotW > wantW+2 || gotH > wantH+2 {
			t.Fatalf("angle %d: rotated bounds %dx%d overshoot expansion %dx%d",
				angle, gotW, gotH, wantW, wantH)
		}
	}
}

// Rotation must not discard any opaque content near the original corners.
func TestRotateTileKeepsCorners(t *testing.T) {
	tile := imaging.New(200, 60, color.NRGBA{R: 255, A: 255})

	rotated := rotateTile(tile, 30)

	opaque := 0
	for i := 3; i < len(rotated.Pix); i += 4 {
		if rotated.Pix[i] > 0 {
			opaque++
		}
	}
	// All original pixels survive rotation, modulo edge antialiasing.
	if opaque < 200*60*95/100 {
		t.Fatalf("rotation lost content: %d opaque pixels of %d", opaque, 200*60)
	}
}

func TestPlaceRibbonClampsTop(t *testing.T) {
	overlay := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	tile := imaging.New(100, 30, color.NRGBA{R: 255, A: 255})

	got := placeRibbon(overlay, tile, 5)

	if _, _, _, a := got.At(50, 0).RGBA(); a == 0 {
		t.Fatalf("tile should be clamped to the top edge")
	}
	if _, _, _, a := got.At(50, 30).RGBA(); a != 0 {
		t.Fatalf("tile extends past its clamped height")
	}
}

func TestPlaceRibbonClampsBottom(t *testing.T) {
	overlay := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	tile := imaging.New(100, 30, color.NRGBA{R: 255, A: 255})

	got := placeRibbon(overlay, tile, 98)

	if _, _, _, a := got.At(50, 99).RGBA(); a == 0 {
		t.Fatalf("tile should reach the bottom edge")
	}
	if _, _, _, a := got.At(50, 69).RGBA(); a != 0 {
		t.Fatalf("tile top should be clamped to imageHeight-tileHeight")
	}
}

func TestPlaceRibbonCentered(t *testing.T) {
	overlay := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	tile := imaging.New(100, 30, color.NRGBA{R: 255, A: 255})

	got := placeRibbon(overlay, tile, 50)

	for _, y := range []int{35, 50, 64} {
		if _, _, _, a := got.At(50, y).RGBA(); a == 0 {
			t.Fatalf("expected tile coverage at row %d", y)
		}
	}
	for _, y := range []int{34, 65} {
		if _, _, _, a := got.At(50, y).RGBA(); a != 0 {
			t.Fatalf("unexpected tile coverage at row %d", y)
		}
	}
}
