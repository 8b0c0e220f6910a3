// Package config loads and validates mpvnotes configuration from TOML.
//
// Load resolves the config file (explicit flag, then the default location),
// decodes it over repository defaults, expands ~ in every path field, and
// validates the result. The returned Config is treated as immutable by every
// other package; all link, player, and OCR knobs flow through it instead of
// ambient globals.
package config
