package subtitle

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
)

var (
	srv1CuePattern = regexp.MustCompile(`(?s)<text[^>]*\bstart="([0-9.]+)"[^>]*>(.*?)</text>`)
	srv2CuePattern = regexp.MustCompile(`(?s)<text[^>]*\bt="(\d+)"[^>]*>(.*?)</text>`)
	srv3CuePattern = regexp.MustCompile(`(?s)<p[^>]*\bt="(\d+)"[^>]*>(.*?)</p>`)
	ttmlCuePattern = regexp.MustCompile(`(?s)<p[^>]*\bbegin="([^"]+)"[^>]*>(.*?)</p>`)
	vttTimePattern = regexp.MustCompile(`^(?:(\d+):)?([0-5]?\d):([0-5]?\d)\.(\d{3})\s+-->`)

	markupPattern = regexp.MustCompile(`<[^>]*>`)
	spacesPattern = regexp.MustCompile(`\s+`)
)

// Strip removes a dialect's wrapper boilerplate and rewrites every cue
// element into a (seconds, caption) pair. Cue order follows the source file.
func Strip(raw string, dialect Dialect) ([]Cue, error) {
	switch dialect {
	case DialectSrv1:
		return stripXMLCues(raw, srv1CuePattern, parseSecondsAttr)
	case DialectSrv2:
		return stripXMLCues(raw, srv2CuePattern, parseMillisAttr)
	case DialectSrv3:
		return stripXMLCues(raw, srv3CuePattern, parseMillisAttr)
	case DialectTTML:
		return stripXMLCues(raw, ttmlCuePattern, parseClockAttr)
	case DialectVTT:
		return stripVTT(raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedFormat, dialect)
	}
}

func stripXMLCues(raw string, pattern *regexp.Regexp, parseOffset func(string) (int, error)) ([]Cue, error) {
	matches := pattern.FindAllStringSubmatch(raw, -1)
	cues := make([]Cue, 0, len(matches))
	for _, match := range matches {
		seconds, err := parseOffset(match[1])
		if err != nil {
			return nil, err
		}
		text := cleanCaption(match[2])
		if text == "" {
			continue
		}
		cues = append(cues, Cue{Seconds: seconds, Text: text})
	}
	return cues, nil
}

// parseSecondsAttr handles srv1 start attributes: seconds with an optional
// fractional part that is discarded.
func parseSecondsAttr(value string) (int, error) {
	whole, _, _ := strings.Cut(value, ".")
	seconds, err := strconv.Atoi(whole)
	if err != nil || seconds < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadTimestamp, value)
	}
	return seconds, nil
}

// parseMillisAttr handles srv2/srv3 t attributes: integer milliseconds,
// truncated by three decimal digits.
func parseMillisAttr(value string) (int, error) {
	millis, err := strconv.Atoi(value)
	if err != nil || millis < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadTimestamp, value)
	}
	return millis / 1000, nil
}

// parseClockAttr handles ttml begin attributes: hh:mm:ss.mmm with the
// fractional suffix truncated.
func parseClockAttr(value string) (int, error) {
	clock, _, _ := strings.Cut(value, ".")
	return ParseClock(clock)
}

func stripVTT(raw string) ([]Cue, error) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	var cues []Cue
	inCue := false
	skipBlock := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			inCue = false
			skipBlock = false
			continue
		}
		if skipBlock {
			continue
		}
		if strings.HasPrefix(trimmed, "WEBVTT") {
			skipBlock = true
			continue
		}
		if strings.HasPrefix(trimmed, "NOTE") || strings.HasPrefix(trimmed, "STYLE") || strings.HasPrefix(trimmed, "REGION") {
			skipBlock = true
			continue
		}
		if match := vttTimePattern.FindStringSubmatch(trimmed); match != nil {
			seconds, err := vttClockSeconds(match)
			if err != nil {
				return nil, err
			}
			cues = append(cues, Cue{Seconds: seconds})
			inCue = true
			continue
		}
		if !inCue {
			// Cue identifier line preceding the timing line.
			continue
		}
		text := cleanCaption(trimmed)
		if text == "" {
			continue
		}
		last := &cues[len(cues)-1]
		if last.Text == "" {
			last.Text = text
		} else {
			last.Text += " " + text
		}
	}
	// Timing lines without caption text carry nothing worth keeping.
	kept := cues[:0]
	for _, cue := range cues {
		if cue.Text != "" {
			kept = append(kept, cue)
		}
	}
	return kept, nil
}

func vttClockSeconds(match []string) (int, error) {
	hours := 0
	if match[1] != "" {
		parsed, err := strconv.Atoi(match[1])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadTimestamp, match[0])
		}
		hours = parsed
	}
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])
	return hours*3600 + minutes*60 + seconds, nil
}

// cleanCaption drops inline markup, unescapes entities, and collapses
// whitespace runs down to single spaces.
func cleanCaption(text string) string {
	text = markupPattern.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	text = spacesPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
