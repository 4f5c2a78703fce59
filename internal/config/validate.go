package config

import "fmt"

// Validate checks the invariants the search core assumes but never checks
// itself: sane grid extent, well-formed non-overlapping in-bounds blocks and
// a resolvable exit target. A model that passes is safe to hand to
// ToBoard and traverse.
func (m *Model) Validate() error {
	if m.Rows < 1 || m.Columns < 1 {
		return fmt.Errorf("board extent must be positive, got %dx%d", m.Columns, m.Rows)
	}
	if m.ExitWidth < 1 {
		return fmt.Errorf("exit width must be at least 1, got %d", m.ExitWidth)
	}
	if err := m.validateWinTarget(); err != nil {
		return err
	}
	if len(m.Blocks) == 0 {
		return fmt.Errorf("board has no blocks")
	}

	seen := make(map[int]bool, len(m.Blocks))
	for _, blk := range m.Blocks {
		if blk.Width < 1 || blk.Height < 1 {
			return fmt.Errorf("block %d: extent must be positive, got %dx%d", blk.ID, blk.Width, blk.Height)
		}
		if seen[blk.ID] {
			return fmt.Errorf("duplicate block id %d", blk.ID)
		}
		seen[blk.ID] = true

		if !m.blockInBounds(blk) {
			return fmt.Errorf("block %d at (%d,%d) extends outside the %dx%d board",
				blk.ID, blk.X, blk.Y, m.Columns, m.Rows)
		}
	}

	if m.WinningBlockID != nil && !seen[*m.WinningBlockID] {
		return fmt.Errorf("exit references unknown block %d", *m.WinningBlockID)
	}

	for i := 0; i < len(m.Blocks); i++ {
		for j := i + 1; j < len(m.Blocks); j++ {
			a, b := m.Blocks[i], m.Blocks[j]
			if a.X < b.X+b.Width && a.X+a.Width > b.X &&
				a.Y < b.Y+b.Height && a.Y+a.Height > b.Y {
				return fmt.Errorf("blocks %d and %d overlap", a.ID, b.ID)
			}
		}
	}
	return nil
}

// validateWinTarget requires the three exit fields to be set together.
func (m *Model) validateWinTarget() error {
	set := 0
	if m.WinningBlockID != nil {
		set++
	}
	if m.WinningX != nil {
		set++
	}
	if m.WinningY != nil {
		set++
	}
	if set != 0 && set != 3 {
		return fmt.Errorf("exit target is incomplete: block, x and y must all be set")
	}
	return nil
}

// blockInBounds allows one exception to strict containment: the winning
// block parked exactly on the exit target may straddle the boundary.
func (m *Model) blockInBounds(blk BlockSpec) bool {
	if blk.X >= 0 && blk.Y >= 0 && blk.X+blk.Width <= m.Columns && blk.Y+blk.Height <= m.Rows {
		return true
	}
	return m.WinningBlockID != nil && blk.ID == *m.WinningBlockID &&
		blk.X == *m.WinningX && blk.Y == *m.WinningY
}
