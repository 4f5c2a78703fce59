package hcl

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/klotskigraph/internal/config"
	"github.com/vk/klotskigraph/internal/schema"
)

// translate converts the decoded HCL schema into the format-agnostic model.
func translate(b *schema.Board) (*config.Model, error) {
	model := &config.Model{
		Rows:      b.Rows,
		Columns:   b.Columns,
		ExitWidth: 1,
	}
	if b.Pins != nil {
		model.Pins = *b.Pins
	}

	if b.Exit != nil {
		x, y, err := pairFromExpr(b.Exit.At)
		if err != nil {
			return nil, fmt.Errorf("exit 'at': %w", err)
		}
		id := b.Exit.Block
		model.WinningBlockID = &id
		model.WinningX = &x
		model.WinningY = &y
		if b.Exit.Width != nil {
			model.ExitWidth = *b.Exit.Width
		}
	}

	for _, blk := range b.Blocks {
		id, err := strconv.Atoi(blk.ID)
		if err != nil {
			return nil, fmt.Errorf("block label %q is not an integer id", blk.ID)
		}
		w, h, err := pairFromExpr(blk.Size)
		if err != nil {
			return nil, fmt.Errorf("block %d 'size': %w", id, err)
		}
		x, y, err := pairFromExpr(blk.At)
		if err != nil {
			return nil, fmt.Errorf("block %d 'at': %w", id, err)
		}
		model.Blocks = append(model.Blocks, config.BlockSpec{
			ID:     id,
			Width:  w,
			Height: h,
			X:      x,
			Y:      y,
		})
	}
	return model, nil
}

// pairFromExpr evaluates an expression expected to yield a two-element list
// of numbers, like `[2, 1]`, and binds it to a pair of Go ints.
func pairFromExpr(expr hcl.Expression) (int, int, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, 0, diags
	}

	listVal, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return 0, 0, fmt.Errorf("expected a pair of numbers: %w", err)
	}
	if listVal.IsNull() || listVal.LengthInt() != 2 {
		return 0, 0, fmt.Errorf("expected exactly two elements")
	}

	var out [2]int
	i := 0
	for it := listVal.ElementIterator(); it.Next(); i++ {
		_, elem := it.Element()
		if err := gocty.FromCtyValue(elem, &out[i]); err != nil {
			return 0, 0, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return out[0], out[1], nil
}
