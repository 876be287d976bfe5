package randperm

// Cursor is a forward-only view over a permutation, producing permuted
// values on demand. Cursors are restartable: any number of them may be
// created at any starting index, but each individual cursor only advances.
//
// Exhaustion is tracked with an explicit flag rather than by comparing a
// wrapped index, so a cursor over a universe of 2^64-1 terminates cleanly
// instead of wrapping around.
type Cursor struct {
	perm Permutation
	next uint64
	done bool
}

// Cursor returns a cursor over the entire permutation, starting at index 0.
func (p Permutation) Cursor() *Cursor {
	return p.CursorAt(0)
}

// CursorAt returns a cursor starting at index i. A starting index at or
// beyond the universe bound yields an already exhausted cursor.
func (p Permutation) CursorAt(i uint64) *Cursor {
	return &Cursor{perm: p, next: i, done: i >= p.Universe()}
}

// Next returns the next permuted value. The second result is false once the
// cursor has moved past index Universe()-1, and stays false forever after.
func (c *Cursor) Next() (uint64, bool) {
	if c.done {
		return 0, false
	}
	v := c.perm.Permute(c.next)
	if c.next == c.perm.Universe()-1 {
		c.done = true
	} else {
		c.next++
	}
	return v, true
}
