package assets

// PRNGTable is the fixed 256-entry nibble sequence wander routes sample
// from. The original draws pseudo-randomness out of its own code bytes
// (spec.md §9 design notes); this repo hard-codes an equivalent fixed
// sequence so behaviour stays reproducible run to run rather than reaching
// for math/rand.
var PRNGTable = [256]uint8{
	3, 5, 15, 12, 14, 11, 5, 13, 5, 6, 9, 15, 1, 7, 10, 15, 14, 13, 12, 6, 3, 4, 12, 12, 10, 7, 11, 8, 2, 0, 1, 12,
	2, 5, 9, 11, 6, 11, 9, 5, 2, 5, 9, 8, 13, 4, 9, 15, 5, 6, 14, 5, 0, 9, 3, 0, 7, 8, 10, 8, 11, 10, 11, 0,
	2, 8, 2, 10, 8, 6, 3, 5, 0, 7, 7, 0, 3, 12, 14, 7, 14, 3, 13, 3, 6, 10, 15, 12, 6, 12, 7, 8, 13, 0, 10, 12,
	3, 15, 7, 8, 3, 13, 2, 13, 0, 13, 2, 8, 2, 0, 8, 6, 8, 4, 9, 1, 6, 7, 1, 15, 6, 3, 1, 8, 9, 2, 15, 15,
	6, 10, 11, 5, 7, 0, 6, 12, 1, 6, 11, 0, 11, 15, 8, 13, 4, 8, 3, 14, 15, 15, 8, 10, 8, 14, 8, 7, 15, 15, 10, 9,
	10, 8, 11, 2, 5, 13, 0, 2, 4, 3, 1, 7, 13, 10, 13, 12, 1, 0, 11, 11, 2, 3, 5, 12, 12, 13, 13, 6, 14, 7, 10, 12,
	0, 9, 10, 15, 13, 7, 15, 0, 8, 4, 4, 13, 9, 0, 8, 1, 15, 11, 0, 7, 14, 2, 7, 6, 1, 15, 15, 4, 7, 11, 0, 5,
	7, 14, 5, 11, 14, 12, 4, 6, 14, 7, 6, 3, 15, 2, 8, 15, 15, 10, 2, 3, 4, 12, 15, 7, 7, 5, 15, 2, 9, 11, 11, 6,
}

// PRNGCursor draws successive nibbles from PRNGTable, wrapping around.
// Kept separate from the table itself so game.State can own one cursor
// per game while the table stays a shared immutable constant.
type PRNGCursor struct {
	pos int
}

// Next returns the next nibble and advances the cursor.
func (c *PRNGCursor) Next() uint8 {
	v := PRNGTable[c.pos]
	c.pos = (c.pos + 1) % len(PRNGTable)
	return v
}
