package subtitle

import "strings"

// DefaultFillWidth is the column used to re-flow merged paragraphs.
const DefaultFillWidth = 70

// terminalRunes end a spoken unit: sentence punctuation or a closing quote.
// This is a best-effort Latin-script heuristic; captions without terminal
// punctuation keep merging into the current paragraph.
const terminalRunes = `.!?"'` + "”’"

// Merge collapses consecutive cues into paragraphs. A cue closes its
// paragraph when its text ends with terminal punctuation; otherwise the next
// cue is appended and its own timestamp discarded. Only the first cue's
// offset survives per paragraph.
func Merge(cues []Cue) []Paragraph {
	paragraphs := make([]Paragraph, 0, len(cues))
	open := false
	for _, cue := range cues {
		text := strings.TrimSpace(cue.Text)
		if text == "" {
			continue
		}
		if open {
			last := &paragraphs[len(paragraphs)-1]
			last.Text += " " + text
			open = !endsSentence(text)
			continue
		}
		paragraphs = append(paragraphs, Paragraph{Seconds: cue.Seconds, Text: text})
		open = !endsSentence(text)
	}
	return paragraphs
}

func endsSentence(text string) bool {
	runes := []rune(text)
	if len(runes) == 0 {
		return false
	}
	return strings.ContainsRune(terminalRunes, runes[len(runes)-1])
}

// Render lays paragraphs out as note text: each paragraph starts with its
// HH:MM:SS marker, merged text is re-flowed to the fill width, and
// paragraphs are separated by one blank line.
func Render(paragraphs []Paragraph, fillWidth int) string {
	if fillWidth <= 0 {
		fillWidth = DefaultFillWidth
	}
	blocks := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		line := FormatSeconds(paragraph.Seconds) + " " + paragraph.Text
		blocks = append(blocks, fill(line, fillWidth))
	}
	out := strings.Join(blocks, "\n\n")
	if out != "" {
		out += "\n"
	}
	return out
}

// fill wraps text at the given width on word boundaries. Words longer than
// the width stay intact on their own line.
func fill(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i == 0 {
			b.WriteString(word)
			lineLen = len(word)
			continue
		}
		if lineLen+1+len(word) > width {
			b.WriteByte('\n')
			b.WriteString(word)
			lineLen = len(word)
			continue
		}
		b.WriteByte(' ')
		b.WriteString(word)
		lineLen += 1 + len(word)
	}
	return b.String()
}
