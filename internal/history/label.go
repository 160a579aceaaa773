package history

import "strings"

const (
	// LabelWidth is the number of code points of text shown in a label.
	LabelWidth = 50
	// MenuLimit caps how many entries a rendered list shows.
	MenuLimit = 25

	ImageLabel = "[Image]"
	EmptyLabel = "No clipboard history"
)

var newlines = strings.NewReplacer("\n", " ", "\r", " ")

// Label renders an entry for a menu or list line. Text longer than LabelWidth
// code points is cut and suffixed with "..."; CR and LF become spaces.
func Label(e Entry) string {
	switch c := e.Content.(type) {
	case Text:
		return textLabel(string(c), LabelWidth)
	case Image:
		return ImageLabel
	default:
		return ""
	}
}

func textLabel(s string, width int) string {
	preview := s
	n := 0
	for i := range s {
		if n == width {
			preview = s[:i] + "..."
			break
		}
		n++
	}
	return newlines.Replace(preview)
}

// Visible returns at most MenuLimit entries from the front of entries.
func Visible(entries []Entry) []Entry {
	if len(entries) > MenuLimit {
		return entries[:MenuLimit]
	}
	return entries
}
