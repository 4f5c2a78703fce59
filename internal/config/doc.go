// Package config defines the format-agnostic puzzle definition model, the
// Loader interface format-specific parsers implement, and the boundary
// validation that keeps malformed configurations out of the search core.
// The core itself performs no validation; everything it assumes is enforced
// here, once, before a board is constructed.
package config
