package subtitle

import (
	"regexp"
	"strings"
)

// DefaultLinkScheme is the Org link type registered for playback jumps.
const DefaultLinkScheme = "mpv"

var (
	markerPattern      = regexp.MustCompile(`(?m)^\d{2,}:[0-5]\d:[0-5]\d`)
	blankRunsPattern   = regexp.MustCompile(`\n{4,}`)
	linkEscapeReplacer = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)
)

// Annotate rewrites every paragraph-leading HH:MM:SS marker into an Org
// timestamp link of the form [[scheme:media::HH:MM:SS][HH:MM:SS]]. The
// media reference is escaped per Org link rules. Replacement walks matches
// right to left so earlier offsets stay valid, then blank-line runs longer
// than two are collapsed to a single blank line.
func Annotate(text, media, scheme string) string {
	if scheme == "" {
		scheme = DefaultLinkScheme
	}
	escaped := EscapeLinkTarget(media)
	matches := markerPattern.FindAllStringIndex(text, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		start, end := matches[i][0], matches[i][1]
		stamp := text[start:end]
		link := "[[" + scheme + ":" + escaped + "::" + stamp + "][" + stamp + "]]"
		text = text[:start] + link + text[end:]
	}
	return blankRunsPattern.ReplaceAllString(text, "\n\n")
}

// EscapeLinkTarget backslash-escapes the characters Org treats specially
// inside link targets.
func EscapeLinkTarget(target string) string {
	return linkEscapeReplacer.Replace(target)
}
