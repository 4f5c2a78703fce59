package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

// validModel is a small two-piece puzzle with an exit on block 1.
func validModel() *Model {
	return &Model{
		Rows:           2,
		Columns:        3,
		ExitWidth:      1,
		WinningBlockID: intp(1),
		WinningX:       intp(3),
		WinningY:       intp(0),
		Blocks: []BlockSpec{
			{ID: 1, Width: 1, Height: 1, X: 0, Y: 0},
			{ID: 2, Width: 1, Height: 2, X: 2, Y: 0},
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid model passes", func(t *testing.T) {
		assert.NoError(t, validModel().Validate())
	})

	cases := []struct {
		name    string
		mutate  func(*Model)
		wantErr string
	}{
		{"zero rows", func(m *Model) { m.Rows = 0 }, "extent must be positive"},
		{"negative columns", func(m *Model) { m.Columns = -1 }, "extent must be positive"},
		{"zero exit width", func(m *Model) { m.ExitWidth = 0 }, "exit width"},
		{"no blocks", func(m *Model) { m.Blocks = nil }, "no blocks"},
		{"partial exit target", func(m *Model) { m.WinningY = nil }, "incomplete"},
		{"duplicate id", func(m *Model) { m.Blocks[1].ID = 1 }, "duplicate block id 1"},
		{"zero-width block", func(m *Model) { m.Blocks[0].Width = 0 }, "extent must be positive"},
		{"out of bounds", func(m *Model) { m.Blocks[1].Y = 1 }, "outside"},
		{"overlap", func(m *Model) { m.Blocks[1] = BlockSpec{ID: 2, Width: 2, Height: 1, X: 0, Y: 0} }, "overlap"},
		{"unknown exit block", func(m *Model) { m.WinningBlockID = intp(9) }, "unknown block 9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validModel()
			tc.mutate(m)
			assert.ErrorContains(t, m.Validate(), tc.wantErr)
		})
	}

	t.Run("winning block may straddle the boundary at the exit", func(t *testing.T) {
		m := validModel()
		m.Blocks[0].X = 3 // exactly on the exit target, past the right edge
		assert.NoError(t, m.Validate())

		m.Blocks[0].Y = 1 // off target, straddling is no longer allowed
		assert.ErrorContains(t, m.Validate(), "outside")
	})

	t.Run("no exit target at all is fine", func(t *testing.T) {
		m := validModel()
		m.WinningBlockID = nil
		m.WinningX = nil
		m.WinningY = nil
		assert.NoError(t, m.Validate())
	})
}

func TestToBoard(t *testing.T) {
	m := validModel()
	m.Pins = true
	m.ExitWidth = 2

	b := m.ToBoard()
	assert.Equal(t, 2, b.Rows)
	assert.Equal(t, 3, b.Columns)
	assert.True(t, b.PinsEnabled)
	assert.Equal(t, 2, b.ExitWidth)

	require.NotNil(t, b.WinningBlockID)
	assert.Equal(t, 1, *b.WinningBlockID)
	assert.NotSame(t, m.WinningBlockID, b.WinningBlockID, "win metadata is copied, not aliased")

	require.Len(t, b.Blocks, 2)
	assert.Equal(t, 1, b.Blocks[0].ID)
	assert.Equal(t, 2, b.Blocks[1].ID)
	assert.Equal(t, "1:0,0;2:2,0;", b.Hash())

	t.Run("exit width defaults to 1 when unset", func(t *testing.T) {
		m := validModel()
		m.ExitWidth = 0
		assert.Equal(t, 1, m.ToBoard().ExitWidth)
	})
}
