package hanoi

import "github.com/vovakirdan/gamebox/internal/core"

const (
	hudHeight = 2 // Title line and separator
	rodGap    = 2 // Blank columns between rod columns
)

// Layout places the three rods on the screen. Each rod owns a full-height
// column; a pointer anywhere inside the column addresses that rod.
type Layout struct {
	Columns  [NumRods]core.Rect
	HoverY   int // Row where a lifted disk floats
	PoleTop  int // First row of the poles
	BaseY    int // Row of the bases; the bottom disk sits just above
	CursorY  int // Row of the rod cursor marker
	StatusY  int // Status message row
	FooterY  int // Controls help row
	TooSmall bool
}

// NewLayout computes rod placement for a screen and disk count.
func NewLayout(screenW, screenH, disks int) Layout {
	colW := diskWidth(disks) + 2
	totalW := NumRods*colW + (NumRods-1)*rodGap
	poleH := disks + 1
	// hover row + poles + base + cursor + status + footer
	needH := hudHeight + 1 + poleH + 1 + 3

	l := Layout{TooSmall: screenW < totalW || screenH < needH}

	left := max((screenW-totalW)/2, 0)
	top := hudHeight + max((screenH-needH)/2, 0)

	l.HoverY = top
	l.PoleTop = top + 1
	l.BaseY = l.PoleTop + poleH
	l.CursorY = l.BaseY + 1
	l.StatusY = l.BaseY + 2
	l.FooterY = max(screenH-1, l.StatusY+1)

	for i := range l.Columns {
		l.Columns[i] = core.NewRect(left+i*(colW+rodGap), hudHeight, colW, max(screenH-hudHeight, 1))
	}
	return l
}

// RodAt returns the rod whose column contains (x, y), or -1.
func (l Layout) RodAt(x, y int) int {
	for i, col := range l.Columns {
		if col.Contains(x, y) {
			return i
		}
	}
	return -1
}

// CenterX returns the column index of a rod's pole.
func (l Layout) CenterX(rod int) int {
	x, _ := l.Columns[rod].Center()
	return x
}

// diskWidth is the drawn width of a disk of the given size (always odd).
func diskWidth(size int) int {
	return 2*size + 1
}
