// Package capture persists screenshot and OCR captures in SQLite.
//
// Each capture records the media file, playback position, screenshot path,
// and any OCR text. The store is a lightweight log the CLI lists and prunes;
// schema changes bump schemaVersion and are applied on open.
package capture
