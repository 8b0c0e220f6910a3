// Package notes renders Org-mode note entries for playback positions.
//
// An entry is a heading derived from the media filename plus a timestamp
// link into the media. Entries are appended to the configured notes file or
// written to stdout when none is set.
package notes
