package board

// Block is a single rectangular puzzle piece. Its shape is fixed for the
// lifetime of the puzzle; only its position changes as moves are applied.
// The ID is unique within a board and is the piece's identity across clones.
type Block struct {
	ID     int
	Width  int
	Height int
	X      int
	Y      int
}

// Clone returns an independent copy of the block.
func (b *Block) Clone() *Block {
	c := *b
	return &c
}

// overlaps reports whether a rectangle anchored at (x, y) with the given
// extent intersects the block's current rectangle. Touching edges do not
// count as an intersection.
func (b *Block) overlaps(x, y, width, height int) bool {
	return x < b.X+b.Width && x+width > b.X &&
		y < b.Y+b.Height && y+height > b.Y
}
