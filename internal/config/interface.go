package config

import "context"

// Loader is the interface for a format-specific puzzle definition loader.
// Implementations parse one file and translate it into the agnostic Model;
// validation is the caller's job.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}
