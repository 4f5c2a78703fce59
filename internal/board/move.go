package board

import "fmt"

// Move is a single unit-step displacement of one block. Exactly one of
// DX/DY is non-zero, and its magnitude is one grid cell.
type Move struct {
	BlockID int
	DX      int
	DY      int
}

// directionLabel names the axis step of a move for display.
func directionLabel(dx, dy int) string {
	switch {
	case dx < 0:
		return "left"
	case dx > 0:
		return "right"
	case dy < 0:
		return "up"
	case dy > 0:
		return "down"
	}
	return ""
}

// DescribeMove labels the transition between a board and one of its
// successors. It walks both block lists in parallel by index — Clone
// preserves insertion order, so index parity holds for any successor
// produced by NextStates — and reports the first block whose position
// differs.
func DescribeMove(parent, child *Board) string {
	for i, blk := range parent.Blocks {
		if i >= len(child.Blocks) {
			break
		}
		moved := child.Blocks[i]
		if blk.X != moved.X || blk.Y != moved.Y {
			dir := directionLabel(moved.X-blk.X, moved.Y-blk.Y)
			return fmt.Sprintf("Block %d moved %s", blk.ID, dir)
		}
	}
	return "Unknown move"
}
