package subtitle

import (
	"fmt"
	"os"
)

// NormalizeOptions controls the import pipeline.
type NormalizeOptions struct {
	// FillWidth re-flows merged paragraphs; zero means DefaultFillWidth.
	FillWidth int
	// AnnotateLinks rewrites timestamp markers into Org links against Media.
	AnnotateLinks bool
	// Media is the playback target referenced by annotated links.
	Media string
	// LinkScheme overrides the registered Org link type.
	LinkScheme string
}

// NormalizeFile runs the whole import pipeline for one subtitle file:
// dialect inference, cue stripping, paragraph merging, and optional link
// annotation. Nothing is written anywhere; the caller decides where the
// text lands.
func NormalizeFile(path string, opts NormalizeOptions) (string, error) {
	dialect, err := DialectFromPath(path)
	if err != nil {
		return "", err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read subtitle file: %w", err)
	}
	cues, err := Strip(string(raw), dialect)
	if err != nil {
		return "", fmt.Errorf("strip %s cues: %w", dialect, err)
	}
	text := Render(Merge(cues), opts.FillWidth)
	if opts.AnnotateLinks {
		media := opts.Media
		if media == "" {
			media = path
		}
		text = Annotate(text, media, opts.LinkScheme)
	}
	return text, nil
}
