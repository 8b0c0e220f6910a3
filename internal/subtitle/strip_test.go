package subtitle

import (
	"errors"
	"testing"
)

const srv1Sample = `<?xml version="1.0" encoding="utf-8" ?>
<transcript>
  <text start="1.54" dur="2.3">First caption.</text>
  <text start="61.9" dur="3.1">Second caption.</text>
</transcript>
`

const srv2Sample = `<?xml version="1.0" encoding="utf-8" ?>
<timedtext>
  <text t="1540" d="2300" w="1">First caption.</text>
  <text t="61234" d="3100" w="1">Second caption.</text>
</timedtext>
`

const srv3Sample = `<?xml version="1.0" encoding="utf-8" ?>
<timedtext format="3">
<body>
  <p t="1540" d="2300"><s>First caption.</s></p>
  <p t="61234" d="3100"><s>Second caption.</s></p>
</body>
</timedtext>
`

const ttmlSample = `<?xml version="1.0" encoding="utf-8"?>
<tt xmlns="http://www.w3.org/ns/ttml">
<body><div>
  <p begin="00:00:01.540" end="00:00:03.840">First caption.</p>
  <p begin="00:02:03.456" end="00:02:06.500">Second caption.</p>
</div></body>
</tt>
`

const vttSample = `WEBVTT
Kind: captions
Language: en

00:00:01.540 --> 00:00:03.840
First caption.

00:01:01.900 --> 00:01:04.200
Second caption.
`

func TestStripOneParagraphPerCue(t *testing.T) {
	tests := []struct {
		dialect Dialect
		raw     string
		stamps  []int
	}{
		{DialectSrv1, srv1Sample, []int{1, 61}},
		{DialectSrv2, srv2Sample, []int{1, 61}},
		{DialectSrv3, srv3Sample, []int{1, 61}},
		{DialectTTML, ttmlSample, []int{1, 123}},
		{DialectVTT, vttSample, []int{1, 61}},
	}
	for _, tc := range tests {
		t.Run(tc.dialect.String(), func(t *testing.T) {
			cues, err := Strip(tc.raw, tc.dialect)
			if err != nil {
				t.Fatalf("Strip: %v", err)
			}
			if len(cues) != len(tc.stamps) {
				t.Fatalf("expected %d cues, got %d (%#v)", len(tc.stamps), len(cues), cues)
			}
			for i, cue := range cues {
				if cue.Seconds != tc.stamps[i] {
					t.Fatalf("cue %d offset = %d, want %d", i, cue.Seconds, tc.stamps[i])
				}
			}
			// Every sample caption ends a sentence, so no merge fires.
			paragraphs := Merge(cues)
			if len(paragraphs) != len(cues) {
				t.Fatalf("expected one paragraph per cue, got %d for %d cues", len(paragraphs), len(cues))
			}
		})
	}
}

func TestStripMillisecondTruncation(t *testing.T) {
	cues, err := Strip(srv2Sample, DialectSrv2)
	if err != nil {
		t.Fatalf("Strip srv2: %v", err)
	}
	if got := FormatSeconds(cues[1].Seconds); got != "00:01:01" {
		t.Fatalf("61234ms should normalize to 00:01:01, got %q", got)
	}
}

func TestStripTTMLFractionTruncation(t *testing.T) {
	cues, err := Strip(ttmlSample, DialectTTML)
	if err != nil {
		t.Fatalf("Strip ttml: %v", err)
	}
	if got := FormatSeconds(cues[1].Seconds); got != "00:02:03" {
		t.Fatalf("00:02:03.456 should normalize to 00:02:03, got %q", got)
	}
}

func TestStripUnescapesEntities(t *testing.T) {
	raw := `<transcript><text start="2" dur="1">it&amp;#39;s &amp;quot;fine&amp;quot;</text></transcript>`
	cues, err := Strip(raw, DialectSrv1)
	if err != nil {
		t.Fatalf("Strip: %v", err)
	}
	if len(cues) != 1 {
		t.Fatalf("expected one cue, got %d", len(cues))
	}
	// Double-escaped entities are common in YouTube transcript payloads;
	// html.UnescapeString resolves one level per pass, we resolve the outer.
	if cues[0].Text != `it&#39;s &quot;fine&quot;` {
		t.Fatalf("unexpected caption text %q", cues[0].Text)
	}
}

func TestStripMalformedTimestampAborts(t *testing.T) {
	raw := `<transcript><text start="soon" dur="1">caption</text></transcript>`
	if _, err := Strip(raw, DialectSrv1); err == nil {
		t.Fatal("expected malformed timestamp to abort the transform")
	}
}

func TestDialectFromPath(t *testing.T) {
	for path, want := range map[string]Dialect{
		"talk.srv1":         DialectSrv1,
		"talk.srv2":         DialectSrv2,
		"talk.srv3":         DialectSrv3,
		"talk.ttml":         DialectTTML,
		"talk.vtt":          DialectVTT,
		"dir/talk.en.VTT":   DialectVTT,
		"/abs/path/t.SRV3":  DialectSrv3,
		"weird.name.x.ttml": DialectTTML,
	} {
		got, err := DialectFromPath(path)
		if err != nil {
			t.Fatalf("DialectFromPath(%q): %v", path, err)
		}
		if got != want {
			t.Fatalf("DialectFromPath(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestDialectFromPathRejections(t *testing.T) {
	if _, err := DialectFromPath("foo.srt"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("foo.srt: expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := DialectFromPath("foo.json3"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("foo.json3: expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := DialectFromPath("foo.sub"); !errors.Is(err, ErrUnrecognizedFormat) {
		t.Fatalf("foo.sub: expected ErrUnrecognizedFormat, got %v", err)
	}
}
