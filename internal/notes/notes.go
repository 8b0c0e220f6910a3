package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mpvnotes/internal/config"
	"mpvnotes/internal/subtitle"
)

// TimestampLink renders an Org link jumping to a playback offset.
func TimestampLink(media string, seconds int, scheme string) string {
	if scheme == "" {
		scheme = subtitle.DefaultLinkScheme
	}
	stamp := subtitle.FormatSeconds(seconds)
	return "[[" + scheme + ":" + subtitle.EscapeLinkTarget(media) + "::" + stamp + "][" + stamp + "]]"
}

// Heading renders an Org heading for the media at the configured level.
func Heading(media string, level int) string {
	if level <= 0 {
		level = 1
	}
	return strings.Repeat("*", level) + " " + DeriveTitle(media)
}

// DeriveTitle turns a media filename into a human-readable heading title.
func DeriveTitle(media string) string {
	if media == "" {
		return "Untitled Media"
	}
	base := filepath.Base(media)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Untitled Media"
	}
	return cases.Title(language.Und).String(title)
}

// Entry renders a full note entry: heading, timestamp link line, and a
// trailing blank line ready for the user's own text.
func Entry(media string, seconds int, cfg config.Notes) string {
	var b strings.Builder
	b.WriteString(Heading(media, cfg.HeadingLevel))
	b.WriteByte('\n')
	b.WriteString(TimestampLink(media, seconds, cfg.LinkScheme))
	b.WriteString("\n\n")
	return b.String()
}

// ImageLink renders an inline Org image link for a captured frame.
func ImageLink(path string) string {
	return "[[file:" + subtitle.EscapeLinkTarget(path) + "]]"
}

// Append writes text to the notes file, or stdout when path is empty.
func Append(path, text string) error {
	if strings.TrimSpace(path) == "" {
		_, err := os.Stdout.WriteString(text)
		return err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open notes file: %w", err)
	}
	if _, err := file.WriteString(text); err != nil {
		_ = file.Close()
		return fmt.Errorf("append notes: %w", err)
	}
	return file.Close()
}
