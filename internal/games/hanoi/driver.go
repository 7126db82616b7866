package hanoi

import "errors"

// ErrNothingHeld is returned when a drop arrives without a lifted disk.
var ErrNothingHeld = errors.New("hanoi: no disk is held")

// Driver is the interaction layer between gestures and the engine.
// Lifting a disk only marks it as held; the engine is touched when the disk is
// dropped, which is when the move is validated and committed.
type Driver struct {
	engine *Engine
	cursor int // Rod under the keyboard cursor
	held   int // Rod the held disk was lifted from, -1 when nothing is held
	disk   int // Size of the held disk
	dragX  int // Pointer column during a mouse drag, -1 otherwise
}

// NewDriver creates a driver with the cursor on the source rod.
func NewDriver(e *Engine) *Driver {
	return &Driver{engine: e, held: -1, dragX: -1}
}

// Cursor returns the rod under the cursor.
func (d *Driver) Cursor() int {
	return d.cursor
}

// Held returns the rod and size of the held disk.
func (d *Driver) Held() (rod, disk int, ok bool) {
	if d.held < 0 {
		return 0, 0, false
	}
	return d.held, d.disk, true
}

// DragX returns the pointer column of an ongoing mouse drag.
func (d *Driver) DragX() (int, bool) {
	return d.dragX, d.held >= 0 && d.dragX >= 0
}

// Point moves the cursor to a rod. Out-of-range rods are ignored.
func (d *Driver) Point(rod int) {
	if validRod(rod) {
		d.cursor = rod
	}
}

// Shift moves the cursor by delta rods, stopping at the edges.
func (d *Driver) Shift(delta int) {
	d.cursor = min(max(d.cursor+delta, 0), NumRods-1)
	d.dragX = -1
}

// PickUp lifts the top disk of rod. It does nothing while a replay runs, when
// a disk is already held, or when the rod is empty.
func (d *Driver) PickUp(rod int) bool {
	if d.held >= 0 || d.engine.Replaying() {
		return false
	}
	disk, ok := d.engine.Top(rod)
	if !ok {
		return false
	}
	d.held = rod
	d.disk = disk
	d.cursor = rod
	return true
}

// Drag records the pointer column while a disk is held.
func (d *Driver) Drag(x int) {
	if d.held >= 0 {
		d.dragX = x
	}
}

// Drop releases the held disk over rod and commits the move if it is legal.
// The disk is released either way; an illegal drop returns it to its rod.
func (d *Driver) Drop(rod int) (MoveResult, error) {
	if d.held < 0 {
		return MoveResult{}, ErrNothingHeld
	}
	from := d.held
	d.release()
	return d.engine.Move(from, rod)
}

// CanDrop reports whether dropping the held disk onto rod would be a legal
// move right now.
func (d *Driver) CanDrop(rod int) bool {
	return d.held >= 0 && d.held != rod && d.engine.CanMove(d.held, rod)
}

// CancelDrag returns the held disk to its rod.
func (d *Driver) CancelDrag() {
	d.release()
}

// Toggle lifts from the cursor rod when nothing is held, and otherwise drops
// onto it. picked reports which of the two happened.
func (d *Driver) Toggle() (res MoveResult, picked bool, err error) {
	if d.held < 0 {
		if !d.PickUp(d.cursor) {
			return MoveResult{}, false, ErrNothingHeld
		}
		return MoveResult{}, true, nil
	}
	res, err = d.Drop(d.cursor)
	return res, false, err
}

func (d *Driver) release() {
	d.held = -1
	d.disk = 0
	d.dragX = -1
}
