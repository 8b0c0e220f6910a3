package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clockPattern = regexp.MustCompile(`^(\d+):([0-5]?\d):([0-5]?\d)$`)

// FormatSeconds renders a non-negative whole-second count as HH:MM:SS.
// Hours are plain integer division by 3600 with no modulus, so offsets past
// a day render as 25:00:00, 100:00:00 and so on.
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// ParseClock converts an HH:MM:SS literal back to total seconds.
func ParseClock(value string) (int, error) {
	match := clockPattern.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrBadTimestamp, value)
	}
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])
	return hours*3600 + minutes*60 + seconds, nil
}

// SplitLink splits an mpv link target of the form path::suffix into the media
// path and a seek offset in seconds. The suffix may be an HH:MM:SS literal or
// a bare non-negative integer; a missing suffix means no seek. Anything else
// fails with ErrBadTimestamp.
func SplitLink(target string) (string, int, error) {
	idx := strings.LastIndex(target, "::")
	if idx < 0 {
		return target, 0, nil
	}
	path := target[:idx]
	suffix := strings.TrimSpace(target[idx+2:])
	if suffix == "" {
		return path, 0, nil
	}
	if seconds, err := ParseClock(suffix); err == nil {
		return path, seconds, nil
	}
	seconds, err := strconv.Atoi(suffix)
	if err != nil || seconds < 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrBadTimestamp, suffix)
	}
	return path, seconds, nil
}
