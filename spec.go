package mockup

// Style selects the watermark treatment applied to every rendered size.
type Style int

const (
	// StyleNone produces clean prints without any overlay.
	StyleNone Style = iota
	// StyleCenter places a single watermark at the image center.
	StyleCenter
	// StyleRibbon tiles the watermark text across evenly spaced
	// horizontal bands.
	StyleRibbon
)

// String returns the directory suffix used for the given style.
func (s Style) String() string {
	switch s {
	case StyleCenter:
		return "center_watermarked"
	case StyleRibbon:
		return "ribbon_watermarked"
	default:
		return "clean_prints"
	}
}

// Valid parameter ranges for watermark settings. Values outside these
// bounds are clamped by the CLI layer before reaching the engine.
const (
	MinOpacity = 50
	MaxOpacity = 255

	MinRibbonCount = 3
	MaxRibbonCount = 10

	MinAngle = -45
	MaxAngle = 45
)

// Spec describes one watermark configuration. It is immutable once
// constructed and shared read-only across all size iterations of a run.
// RibbonCount and AngleDegrees are only meaningful for StyleRibbon.
type Spec struct {
	Style        Style
	Text         string
	Opacity      int
	RibbonCount  int
	AngleDegrees int
}

// NoWatermark returns a spec for clean, unwatermarked prints.
func NoWatermark() Spec {
	return Spec{Style: StyleNone}
}

// CenterWatermark returns a spec for a single centered watermark.
func CenterWatermark(text string, opacity int) Spec {
	return Spec{
		Style:   StyleCenter,
		Text:    text,
		Opacity: ClampOpacity(opacity),
	}
}

// RibbonWatermark returns a spec for tiled ribbon watermarks.
func RibbonWatermark(text string, opacity, ribbonCount, angleDegrees int) Spec {
	return Spec{
		Style:        StyleRibbon,
		Text:         text,
		Opacity:      ClampOpacity(opacity),
		RibbonCount:  ClampRibbonCount(ribbonCount),
		AngleDegrees: ClampAngle(angleDegrees),
	}
}

// ClampOpacity forces opacity into the supported 50-255 range.
func ClampOpacity(v int) int {
	return clamp(v, MinOpacity, MaxOpacity)
}

// ClampRibbonCount forces the ribbon count into the supported 3-10 range.
func ClampRibbonCount(v int) int {
	return clamp(v, MinRibbonCount, MaxRibbonCount)
}

// ClampAngle forces the ribbon angle into the supported -45..45 range.
func ClampAngle(v int) int {
	return clamp(v, MinAngle, MaxAngle)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
