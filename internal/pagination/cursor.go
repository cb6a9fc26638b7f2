package pagination

// Cursor tracks the current page of a list. The zero value is not usable;
// build one with NewCursor.
type Cursor struct {
	page  int
	size  int
	total int
}

// NewCursor starts on page 1 of a list with n items
func NewCursor(n, size int) Cursor {
	if size <= 0 {
		size = DefaultPageSize
	}
	return Cursor{page: 1, size: size, total: TotalPages(n, size)}
}

// Reset moves back to page 1 for a list with n items
func (c Cursor) Reset(n int) Cursor {
	return NewCursor(n, c.size)
}

func (c Cursor) Page() int       { return c.page }
func (c Cursor) Size() int       { return c.size }
func (c Cursor) TotalPages() int { return c.total }

// HasPrev reports whether the Previous button is enabled
func (c Cursor) HasPrev() bool {
	return c.page > 1
}

// HasNext reports whether the Next button is enabled
func (c Cursor) HasNext() bool {
	return c.page < c.total
}

// Next advances one page; a no-op on the last page
func (c Cursor) Next() Cursor {
	if c.HasNext() {
		c.page++
	}
	return c
}

// Prev goes back one page; a no-op on the first page
func (c Cursor) Prev() Cursor {
	if c.HasPrev() {
		c.page--
	}
	return c
}

// Goto jumps to page p, clamped to the valid range
func (c Cursor) Goto(p int) Cursor {
	if c.total == 0 {
		c.page = 1
		return c
	}
	c.page = clamp(p, 1, c.total)
	return c
}

// Labels lays out the page buttons for the current page
func (c Cursor) Labels() []Label {
	return Labels(c.page, c.total)
}
