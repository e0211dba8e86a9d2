package panel

// Region is one horizontal band of the panel.
type Region int

const (
	RegionSeparator Region = iota
	RegionContent
	RegionBar
)

func (r Region) String() string {
	switch r {
	case RegionSeparator:
		return "separator"
	case RegionContent:
		return "content"
	case RegionBar:
		return "bar"
	}
	return "unknown"
}

// RegionOrder lists the bands top to bottom. The normal layout hangs from the
// top of the screen; the reversed one stands on the bottom.
func RegionOrder(reversed bool) []Region {
	if reversed {
		return []Region{RegionBar, RegionSeparator, RegionContent, RegionSeparator}
	}
	return []Region{RegionSeparator, RegionContent, RegionSeparator, RegionBar}
}

// ContentKind selects between the two content views.
type ContentKind int

const (
	ContentTabs ContentKind = iota
	ContentHistory
)

func (k ContentKind) String() string {
	if k == ContentHistory {
		return "history"
	}
	return "tabs"
}

// Grid maps list indexes to logical rows and columns. Logical row 0 holds the
// first items; Reversed only changes where that row is drawn.
type Grid struct {
	Count    int
	Columns  int
	Reversed bool
}

func (g Grid) cols() int { return max(1, g.Columns) }

// Rows is the number of logical rows needed for Count items.
func (g Grid) Rows() int {
	c := g.cols()
	return (g.Count + c - 1) / c
}

// Position returns the logical row and column of item i.
func (g Grid) Position(i int) (row, col int) {
	c := g.cols()
	return i / c, i % c
}

// Index returns the item at a logical row and column, if there is one.
func (g Grid) Index(row, col int) (int, bool) {
	c := g.cols()
	if row < 0 || col < 0 || col >= c {
		return 0, false
	}
	i := row*c + col
	if i >= g.Count {
		return 0, false
	}
	return i, true
}

// RowItems returns the indexes in logical row r, left to right.
func (g Grid) RowItems(r int) []int {
	var out []int
	for col := 0; col < g.cols(); col++ {
		if i, ok := g.Index(r, col); ok {
			out = append(out, i)
		}
	}
	return out
}

// LogicalRow converts a visual row (0 at the top of a viewport showing
// visible rows from scroll) into a logical row.
func (g Grid) LogicalRow(visual, scroll, visible int) int {
	if g.Reversed {
		return scroll + visible - 1 - visual
	}
	return scroll + visual
}
