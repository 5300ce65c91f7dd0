// Package config holds cmd/cco's small runtime configuration, threaded
// through explicitly rather than kept as a package global: independent
// evaluations must stay safe to run against independent BuiltCore
// instances, which a shared global would put at risk the moment a
// second invocation changed it mid-run.
package config

import "github.com/denfren/cco/internal/output"

// Config is cmd/cco's resolved set of flags for one invocation.
type Config struct {
	// Dir is the working directory documents are loaded from.
	Dir string
	// Format selects the output serialization.
	Format output.Format
	// Indent is the number of spaces of indentation used when rendering.
	Indent int
}

// Default returns the configuration cmd/cco falls back to when a flag is
// left unset.
func Default() Config {
	return Config{
		Dir:    ".",
		Format: output.FormatJSON,
		Indent: 2,
	}
}
