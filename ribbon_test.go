package mockup

import (
	"image/color"
	"testing"
)

var (
	testTextColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	testShadowColor = color.NRGBA{A: 80}
)

// Tiles must always exceed the requested image width by half so rotation
// never exposes empty corners.
func TestRibbonTileWidth(t *testing.T) {
	face, err := NewFontSource("/missing.ttf").Face(20)
	if err != nil {
		t.Fatalf("Face error: %v", err)
	}
	defer face.Close()

	tile := buildRibbonTile(400, "SAMPLE", face, 20, testTextColor, testShadowColor)

	if got, want := tile.Bounds().Dx(), 600; got != want {
		t.Fatalf("tile width %d, want %d", got, want)
	}
	if tile.Bounds().Dy() < ribbonMinHeight {
		t.Fatalf("tile height %d below minimum %d", tile.Bounds().Dy(), ribbonMinHeight)
	}
}

// Empty text must terminate immediately and still return a full-size
// blank tile instead of looping on a zero advance.
func TestRibbonTileEmptyTextTerminates(t *testing.T) {
	face, err := NewFontSource("/missing.ttf").Face(20)
	if err != nil {
		t.Fatalf("Face error: %v", err)
	}
	defer face.Close()

	tile := buildRibbonTile(400, "", face, 20, testTextColor, testShadowColor)

	if tile.Bounds().Dx() != 600 {
		t.Fatalf("blank tile width %d, want 600", tile.Bounds().Dx())
	}
	for _, p := range tile.Pix {
		if p != 0 {
			t.Fatalf("expected fully transparent tile for empty text")
		}
	}
}

// Real text must actually land on the tile, and repetitions must cover
// the full strip width rather than stopping after the first draw.
func TestRibbonTileRepeatsAcrossWidth(t *testing.T) {
	face, err := NewFontSource("/missing.ttf").Face(20)
	if err != nil {
		t.Fatalf("Face error: %v", err)
	}
	defer face.Close()

	tile := buildRibbonTile(800, "SAMPLE", face, 20, testTextColor, testShadowColor)
	bounds := tile.Bounds()

	textWidth, _ := MeasureText(face, "SAMPLE")
	advance := textWidth + ribbonTextGap

	// The last repetition starts within one advance of the right edge,
	// so opaque pixels must appear in the final advance-sized window.
	lastWindow := bounds.Dx() - advance

	found := false
	for y := bounds.Min.Y; y < bounds.Max.Y && !found; y++ {
		for x := lastWindow; x < bounds.Max.X; x++ {
			if _, _, _, a := tile.At(x, y).RGBA(); a > 0 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatalf("no drawn pixels in the final repetition window; tiling stopped early")
	}
}
