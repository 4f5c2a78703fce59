package config

import "github.com/vk/klotskigraph/internal/board"

// BlockSpec describes one piece of the initial arrangement.
type BlockSpec struct {
	ID     int
	Width  int
	Height int
	X      int
	Y      int
}

// Model is the format-agnostic representation of a puzzle definition,
// produced by a Loader and validated before the core ever sees it. The
// block list is ordered; the order is carried through to the board.
type Model struct {
	Rows    int
	Columns int
	Pins    bool

	// WinningBlockID, WinningX and WinningY are the optional exit target.
	// Either all three are set or none is; Validate enforces that.
	WinningBlockID *int
	WinningX       *int
	WinningY       *int

	// ExitWidth is the width of the exit opening in columns, minimum 1.
	ExitWidth int

	Blocks []BlockSpec
}

// ToBoard constructs the core board value for a validated model. The win
// metadata is copied, not aliased, so the model can be discarded.
func (m *Model) ToBoard() *board.Board {
	b := board.New(m.Rows, m.Columns)
	b.PinsEnabled = m.Pins
	if m.ExitWidth > 0 {
		b.ExitWidth = m.ExitWidth
	}
	if m.WinningBlockID != nil {
		id := *m.WinningBlockID
		b.WinningBlockID = &id
	}
	if m.WinningX != nil {
		x := *m.WinningX
		b.WinningX = &x
	}
	if m.WinningY != nil {
		y := *m.WinningY
		b.WinningY = &y
	}
	for _, bs := range m.Blocks {
		b.Blocks = append(b.Blocks, &board.Block{
			ID:     bs.ID,
			Width:  bs.Width,
			Height: bs.Height,
			X:      bs.X,
			Y:      bs.Y,
		})
	}
	return b
}
