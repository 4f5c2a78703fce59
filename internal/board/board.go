package board

import (
	"sort"
	"strconv"
	"strings"
)

// Board is one complete puzzle configuration: the grid extent, the pieces on
// it, and the optional exit metadata. Boards are never mutated in place once
// published; every transition clones the board and moves one block on the
// clone. Blocks keeps insertion order, which Clone preserves — DescribeMove
// relies on that parity to diff a board against its successor.
type Board struct {
	Rows    int
	Columns int
	Blocks  []*Block

	// PinsEnabled restricts non-square blocks to sliding along their
	// long axis.
	PinsEnabled bool

	// WinningBlockID, WinningX and WinningY designate the winning piece and
	// the position that counts as solved. All three must be set for the win
	// and exit rules to apply. ExitWidth is how many columns wide the exit
	// opening is; a winning block no wider than the opening may slide out
	// through the winning position past the normal board bounds.
	WinningBlockID *int
	WinningX       *int
	WinningY       *int
	ExitWidth      int
}

// New returns an empty board of the given extent with the default
// one-column exit opening.
func New(rows, columns int) *Board {
	return &Board{
		Rows:      rows,
		Columns:   columns,
		ExitWidth: 1,
	}
}

// Clone deep-copies the board. Blocks are copied in their original order;
// the winning metadata is immutable and shared.
func (b *Board) Clone() *Board {
	c := *b
	c.Blocks = make([]*Block, len(b.Blocks))
	for i, blk := range b.Blocks {
		c.Blocks[i] = blk.Clone()
	}
	return &c
}

// BlockByID returns the block with the given id, or nil.
func (b *Board) BlockByID(id int) *Block {
	for _, blk := range b.Blocks {
		if blk.ID == id {
			return blk
		}
	}
	return nil
}

// winningSet reports whether all three win fields are configured.
func (b *Board) winningSet() bool {
	return b.WinningBlockID != nil && b.WinningX != nil && b.WinningY != nil
}

// isWinningBlock reports whether the block is the designated winning piece.
func (b *Board) isWinningBlock(blk *Block) bool {
	return b.winningSet() && blk.ID == *b.WinningBlockID
}

// IsAreaFree reports whether a width×height rectangle anchored at (x, y) is
// free for moving to occupy. The right edge may protrude past the board only
// when the rectangle sits exactly on the winning position and moving is the
// winning block; the bottom edge gets the same exception keyed on the winning
// row alone. ExitWidth is deliberately not consulted here — move acceptance
// applies it, and which axis the exit constrains depends on that split.
func (b *Board) IsAreaFree(x, y, width, height int, moving *Block) bool {
	if x < 0 || y < 0 {
		return false
	}
	if x+width > b.Columns {
		if !(b.isWinningBlock(moving) && x == *b.WinningX && y == *b.WinningY) {
			return false
		}
	}
	if y+height > b.Rows {
		if !(b.isWinningBlock(moving) && y == *b.WinningY) {
			return false
		}
	}
	for _, blk := range b.Blocks {
		if blk.ID == moving.ID {
			continue
		}
		if blk.overlaps(x, y, width, height) {
			return false
		}
	}
	return true
}

// isExitMove reports whether parking blk at (x, y) slides it out through the
// exit: the winning block, exactly at the winning position, with an opening
// at least as wide as the block.
func (b *Board) isExitMove(blk *Block, x, y int) bool {
	return b.isWinningBlock(blk) &&
		x == *b.WinningX && y == *b.WinningY &&
		b.ExitWidth >= blk.Width
}

// inBounds reports whether a rectangle lies fully inside the grid.
func (b *Board) inBounds(x, y, width, height int) bool {
	return x >= 0 && y >= 0 && x+width <= b.Columns && y+height <= b.Rows
}

// PossibleMoves returns every accepted unit-step move for one block. With
// pins enabled, a wide block may only slide horizontally and a tall block
// only vertically; square blocks always have all four directions. A move
// that lands free but out of bounds is only accepted as an exit move.
func (b *Board) PossibleMoves(blk *Block) []Move {
	var dirs [][2]int
	switch {
	case b.PinsEnabled && blk.Width > blk.Height:
		dirs = [][2]int{{-1, 0}, {1, 0}}
	case b.PinsEnabled && blk.Height > blk.Width:
		dirs = [][2]int{{0, -1}, {0, 1}}
	default:
		dirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	}

	moves := make([]Move, 0, len(dirs))
	for _, d := range dirs {
		nx, ny := blk.X+d[0], blk.Y+d[1]
		if !b.IsAreaFree(nx, ny, blk.Width, blk.Height, blk) {
			continue
		}
		if b.isExitMove(blk, nx, ny) || b.inBounds(nx, ny, blk.Width, blk.Height) {
			moves = append(moves, Move{BlockID: blk.ID, DX: d[0], DY: d[1]})
		}
	}
	return moves
}

// Apply returns the successor board produced by one move: a full clone with
// the moved block displaced by (DX, DY). The receiver is left untouched.
func (b *Board) Apply(m Move) *Board {
	next := b.Clone()
	blk := next.BlockByID(m.BlockID)
	blk.X += m.DX
	blk.Y += m.DY
	return next
}

// NextStates returns every one-move successor of the board, one per accepted
// move per block. Each successor differs from the receiver in exactly one
// block's position by exactly one grid unit.
func (b *Board) NextStates() []*Board {
	var states []*Board
	for _, blk := range b.Blocks {
		for _, m := range b.PossibleMoves(blk) {
			states = append(states, b.Apply(m))
		}
	}
	return states
}

// Hash returns the canonical state signature: blocks sorted by id ascending,
// each contributing "{id}:{x},{y};". Two boards are the same state iff their
// signatures are equal; block insertion order does not matter.
func (b *Board) Hash() string {
	sorted := make([]*Block, len(b.Blocks))
	copy(sorted, b.Blocks)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var sb strings.Builder
	for _, blk := range sorted {
		sb.WriteString(strconv.Itoa(blk.ID))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(blk.X))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(blk.Y))
		sb.WriteByte(';')
	}
	return sb.String()
}

// IsWinning reports whether the winning block sits exactly on the winning
// position. It degrades to false when the win metadata is incomplete or the
// referenced block does not exist.
func (b *Board) IsWinning() bool {
	if !b.winningSet() {
		return false
	}
	blk := b.BlockByID(*b.WinningBlockID)
	return blk != nil && blk.X == *b.WinningX && blk.Y == *b.WinningY
}
