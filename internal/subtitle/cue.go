package subtitle

// Cue is one caption unit: a whole-second offset into the media and the
// caption text spoken there. Fractional precision from the source file is
// discarded on parse.
type Cue struct {
	Seconds int
	Text    string
}

// Paragraph is one or more merged cues sharing the first cue's timestamp.
type Paragraph struct {
	Seconds int
	Text    string
}
