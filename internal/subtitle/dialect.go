package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Dialect identifies one of the supported caption container formats.
type Dialect int

const (
	// DialectSrv1 is YouTube's transcript XML with per-second start attributes.
	DialectSrv1 Dialect = iota
	// DialectSrv2 is timedtext XML with millisecond t attributes on <text>.
	DialectSrv2
	// DialectSrv3 is timedtext format=3 XML with millisecond t attributes on <p>.
	DialectSrv3
	// DialectTTML uses hh:mm:ss.mmm begin attributes on <p>.
	DialectTTML
	// DialectVTT is WebVTT with hh:mm:ss.mmm --> hh:mm:ss.mmm timing lines.
	DialectVTT
)

// Recognized-but-unimplemented extensions are called out separately so users
// get an actionable message instead of a generic failure.
var unsupportedExtensions = map[string]struct{}{
	"srt":   {},
	"json3": {},
}

// String returns the file extension conventionally used for the dialect.
func (d Dialect) String() string {
	switch d {
	case DialectSrv1:
		return "srv1"
	case DialectSrv2:
		return "srv2"
	case DialectSrv3:
		return "srv3"
	case DialectTTML:
		return "ttml"
	case DialectVTT:
		return "vtt"
	default:
		return fmt.Sprintf("dialect(%d)", int(d))
	}
}

// DialectFromPath infers the caption dialect from a file extension.
// Extensions in the known-but-unimplemented set return ErrUnsupportedFormat;
// anything else outside the five dialects returns ErrUnrecognizedFormat.
func DialectFromPath(path string) (Dialect, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "srv1":
		return DialectSrv1, nil
	case "srv2":
		return DialectSrv2, nil
	case "srv3":
		return DialectSrv3, nil
	case "ttml":
		return DialectTTML, nil
	case "vtt":
		return DialectVTT, nil
	}
	if _, known := unsupportedExtensions[ext]; known {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedFormat, ext)
}
