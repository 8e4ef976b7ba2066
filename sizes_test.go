package mockup

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

// The canonical table must stay internally consistent: 9 entries, positive
// dimensions, and pixel ratios roughly matching the inch ratio each label
// states.
func TestPrintSizesTable(t *testing.T) {
	if len(PrintSizes) != 9 {
		t.Fatalf("expected 9 print sizes, got %d", len(PrintSizes))
	}
	if len(SizeLabels) != len(PrintSizes) {
		t.Fatalf("label list has %d entries, table has %d", len(SizeLabels), len(PrintSizes))
	}

	for _, label := range SizeLabels {
		size, ok := PrintSizes[label]
		if !ok {
			t.Fatalf("label %q missing from table", label)
		}
		if size.Width <= 0 || size.Height <= 0 {
			t.Fatalf("size %q has non-positive dimensions %dx%d", label, size.Width, size.Height)
		}

		parts := strings.SplitN(label, "x", 2)
		inchW, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			t.Fatalf("parse label %q width: %v", label, err)
		}
		inchH, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			t.Fatalf("parse label %q height: %v", label, err)
		}

		labelRatio := inchW / inchH
		pixelRatio := float64(size.Width) / float64(size.Height)
		if math.Abs(labelRatio-pixelRatio) > 0.1 {
			t.Fatalf("size %q ratio mismatch: label %.3f pixels %.3f", label, labelRatio, pixelRatio)
		}
	}
}

func TestPresetLabelsExist(t *testing.T) {
	for _, preset := range [][]string{PopularSizes, SmallSizes, LargeSizes} {
		for _, label := range preset {
			if _, ok := PrintSizes[label]; !ok {
				t.Fatalf("preset label %q missing from table", label)
			}
		}
	}
}

func TestSelectSizesPreservesOrder(t *testing.T) {
	sel, err := SelectSizes("16x20", "5x7", "8x10")
	if err != nil {
		t.Fatalf("SelectSizes error: %v", err)
	}
	want := []string{"16x20", "5x7", "8x10"}
	if len(sel.Labels) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(sel.Labels))
	}
	for i, label := range want {
		if sel.Labels[i] != label {
			t.Fatalf("label %d: got %q, want %q", i, sel.Labels[i], label)
		}
	}
}

func TestSelectSizesRejectsUnknownLabel(t *testing.T) {
	if _, err := SelectSizes("9x9"); err == nil {
		t.Fatalf("expected error for unknown label")
	}
	if _, err := SelectSizes(); err == nil {
		t.Fatalf("expected error for empty selection")
	}
}

func TestSelectSizesDropsDuplicates(t *testing.T) {
	sel, err := SelectSizes("8x10", "8x10", "5x7")
	if err != nil {
		t.Fatalf("SelectSizes error: %v", err)
	}
	if sel.Len() != 2 {
		t.Fatalf("expected 2 unique labels, got %d", sel.Len())
	}
}
