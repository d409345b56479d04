package logscreen

// Cursor tracks the write position (0-based). Relative moves are not
// clamped, so Row and Col may transiently be negative or point past the
// current buffer extent; positions are reconciled when a write happens.
type Cursor struct {
	Row int
	Col int
}

// move applies a relative movement.
func (c *Cursor) move(dRow, dCol int) {
	c.Row += dRow
	c.Col += dCol
}

// moveTo places the cursor at an absolute 0-based position.
func (c *Cursor) moveTo(row, col int) {
	c.Row = row
	c.Col = col
}
