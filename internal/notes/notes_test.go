package notes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mpvnotes/internal/config"
	"mpvnotes/internal/subtitle"
)

func TestDeriveTitle(t *testing.T) {
	tests := map[string]string{
		"/media/deep_learning-lecture.03.mkv": "Deep Learning Lecture 03",
		"talk.mkv":                            "Talk",
		"a b.webm":                            "A B",
		"":                                    "Untitled Media",
		"___.mkv":                             "Untitled Media",
	}
	for media, want := range tests {
		if got := DeriveTitle(media); got != want {
			t.Fatalf("DeriveTitle(%q) = %q, want %q", media, got, want)
		}
	}
}

func TestTimestampLinkRoundTrip(t *testing.T) {
	link := TimestampLink("/media/talk.mkv", 3723, "")
	want := "[[mpv:/media/talk.mkv::01:02:03][01:02:03]]"
	if link != want {
		t.Fatalf("TimestampLink = %q, want %q", link, want)
	}
	target := strings.TrimSuffix(strings.TrimPrefix(link, "[["), "][01:02:03]]")
	path, seconds, err := subtitle.SplitLink(strings.TrimPrefix(target, "mpv:"))
	if err != nil {
		t.Fatalf("SplitLink: %v", err)
	}
	if path != "/media/talk.mkv" || seconds != 3723 {
		t.Fatalf("round trip gave (%q, %d)", path, seconds)
	}
}

func TestEntryLayout(t *testing.T) {
	cfg := config.Notes{LinkScheme: "mpv", HeadingLevel: 2}
	entry := Entry("/media/some-talk.mkv", 95, cfg)
	lines := strings.Split(entry, "\n")
	if lines[0] != "** Some Talk" {
		t.Fatalf("heading line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "[[mpv:/media/some-talk.mkv::00:01:35]") {
		t.Fatalf("link line = %q", lines[1])
	}
	if !strings.HasSuffix(entry, "\n\n") {
		t.Fatalf("entry should end with a blank line: %q", entry)
	}
}

func TestAppendToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.org")
	if err := Append(path, "* one\n"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := Append(path, "* two\n"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read notes: %v", err)
	}
	if string(data) != "* one\n* two\n" {
		t.Fatalf("notes content = %q", string(data))
	}
}
