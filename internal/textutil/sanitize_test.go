package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := map[string]string{
		"talk.mkv":          "talk.mkv",
		"a/b\\c:d":          "a-b-c-d",
		"what?<is>|this\"":  "whatisthis",
		"  padded name  ":   "padded name",
		"star*name":         "star-name",
		"":                  "",
		"01:02:03-frame":    "01-02-03-frame",
	}
	for in, want := range tests {
		if got := SanitizeFileName(in); got != want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", in, got, want)
		}
	}
}
