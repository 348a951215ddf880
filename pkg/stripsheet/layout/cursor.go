package layout

// Cursor is the output row pointer (0-based). It only moves forward.
type Cursor struct {
	row int
}

// Row returns the next row to be written.
func (c *Cursor) Row() int {
	return c.row
}

// Advance moves the cursor down by n rows. Negative n is ignored.
func (c *Cursor) Advance(n int) {
	if n > 0 {
		c.row += n
	}
}
