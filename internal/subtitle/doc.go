// Package subtitle turns raw subtitle files into timestamped note text.
//
// It recognizes the five caption dialects YouTube downloads produce (srv1,
// srv2, srv3, ttml, vtt), strips each dialect's wrapper markup down to
// (seconds, caption) cues, merges consecutive cues into readable paragraphs
// keyed by the first cue's HH:MM:SS marker, and optionally rewrites those
// markers into Org mpv: links.
//
// All transforms run on in-memory copies and fail fast; callers only insert
// output after the whole pipeline succeeds.
package subtitle
