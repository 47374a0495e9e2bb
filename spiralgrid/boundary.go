package spiralgrid

// boundary is the shrinking frame the spiral bounces inside. The left edge
// is always column 0.
type boundary struct {
	top, bottom, right int
}

func newBoundary(n int) boundary {
	return boundary{top: 0, bottom: n - 1, right: n - 1}
}

func (b *boundary) withinRow(row int) bool {
	return row > b.top && row < b.bottom
}

func (b *boundary) withinCol(col int) bool {
	return col < b.right
}

func (b *boundary) within(row, col int) bool {
	return b.withinRow(row) && b.withinCol(col)
}

// shrink moves every edge one ring inward.
func (b *boundary) shrink() {
	b.top++
	b.bottom--
	b.right--
}
