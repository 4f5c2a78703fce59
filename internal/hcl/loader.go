package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/klotskigraph/internal/config"
	"github.com/vk/klotskigraph/internal/ctxlog"
	"github.com/vk/klotskigraph/internal/schema"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL board file loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load parses a .hcl board file and translates it into the agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing board file.", "path", path)

	file, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	var root schema.Root
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}
	if root.Board == nil {
		return nil, fmt.Errorf("%s: missing required 'board' block", path)
	}

	model, err := translate(root.Board)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("Board file translated into unified model.", "blocks", len(model.Blocks))
	return model, nil
}
