package mockup

import "fmt"

// PrintSize is a target pixel dimension at 300 DPI equivalence.
type PrintSize struct {
	Width  int
	Height int
}

// PrintSizes maps every supported size label to its pixel dimensions at
// 300 DPI. The table is fixed; labels follow the usual inch notation.
var PrintSizes = map[string]PrintSize{
	"5x7":    {1500, 2100},
	"8x10":   {2400, 3000},
	"8.5x11": {2550, 3300},
	"11x14":  {3300, 4200},
	"12x16":  {3600, 4800},
	"16x20":  {4800, 6000},
	"18x24":  {5400, 7200},
	"20x24":  {6000, 7200},
	"24x36":  {7200, 10800},
}

// SizeLabels lists every supported label in ascending print size order.
// Go map iteration is unordered, so ordered selections are built from
// this slice.
var SizeLabels = []string{
	"5x7", "8x10", "8.5x11", "11x14", "12x16", "16x20", "18x24", "20x24", "24x36",
}

// Preset label groups matching the common Etsy workflows.
var (
	PopularSizes = []string{"5x7", "8x10", "11x14", "16x20"}
	SmallSizes   = []string{"5x7", "8x10", "8.5x11"}
	LargeSizes   = []string{"16x20", "18x24", "20x24", "24x36"}
)

// Selection is an ordered subset of the size table. Sizes render in slice
// order, so repeated runs produce files in the same sequence.
type Selection struct {
	Labels []string
	Sizes  map[string]PrintSize
}

// AllSizes returns a selection covering the full 9-entry table.
func AllSizes() Selection {
	return Selection{Labels: SizeLabels, Sizes: PrintSizes}
}

// SelectSizes builds a selection from the given labels, preserving their
// order. Unknown labels are rejected.
func SelectSizes(labels ...string) (Selection, error) {
	if len(labels) == 0 {
		return Selection{}, fmt.Errorf("no size labels given")
	}

	sel := Selection{Sizes: make(map[string]PrintSize, len(labels))}
	for _, label := range labels {
		size, ok := PrintSizes[label]
		if !ok {
			return Selection{}, fmt.Errorf("unknown size label %q", label)
		}
		if _, dup := sel.Sizes[label]; dup {
			continue
		}
		sel.Labels = append(sel.Labels, label)
		sel.Sizes[label] = size
	}
	return sel, nil
}

// Len reports how many sizes the selection contains.
func (s Selection) Len() int { return len(s.Labels) }
