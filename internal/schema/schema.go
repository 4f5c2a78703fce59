// Package schema holds the HCL-tagged structs a puzzle board file decodes
// into. Translation into the format-agnostic config model lives in the hcl
// package; these types only mirror the file layout.
package schema

import "github.com/hashicorp/hcl/v2"

// Block is one `block "<id>" { ... }` definition. The label is the piece id;
// size and at are [width, height] and [x, y] pairs, kept as expressions so
// the loader can evaluate and type-check them with useful diagnostics.
type Block struct {
	ID   string         `hcl:"id,label"`
	Size hcl.Expression `hcl:"size"`
	At   hcl.Expression `hcl:"at"`
}

// Exit is the optional `exit { ... }` block naming the winning piece, the
// position that counts as solved and the width of the opening.
type Exit struct {
	Block int            `hcl:"block"`
	At    hcl.Expression `hcl:"at"`
	Width *int           `hcl:"width,optional"`
}

// Board is the single top-level `board` block of a puzzle file.
type Board struct {
	Rows    int      `hcl:"rows"`
	Columns int      `hcl:"columns"`
	Pins    *bool    `hcl:"pins,optional"`
	Exit    *Exit    `hcl:"exit,block"`
	Blocks  []*Block `hcl:"block,block"`
}

// Root is the top-level structure of a puzzle file.
type Root struct {
	Board *Board   `hcl:"board,block"`
	Body  hcl.Body `hcl:",remain"`
}
