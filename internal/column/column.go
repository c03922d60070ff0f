// Package column classifies column names by their storage-kind suffix and
// decides which columns take part in a generated artifact.
package column

import "strings"

// Kind is the semantic category of a column, inferred from its name suffix.
type Kind int

const (
	// Plain columns get no file handling.
	Plain Kind = iota
	// Image columns end in _img.
	Image
	// Video columns end in _vid.
	Video
	// Audio columns end in _aud.
	Audio
	// Document columns end in _docs.
	Document
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Image:
		return "image"
	case Video:
		return "video"
	case Audio:
		return "audio"
	case Document:
		return "document"
	default:
		return "unknown"
	}
}

// IsMedia reports whether columns of this kind hold an uploaded file.
func (k Kind) IsMedia() bool {
	return k != Plain
}

// suffixes is the classification table. Order is irrelevant: the longest
// matching suffix wins.
var suffixes = []struct {
	suffix string
	kind   Kind
}{
	{"_img", Image},
	{"_vid", Video},
	{"_aud", Audio},
	{"_docs", Document},
}

// Classify returns the Kind of a column name. A suffix only counts when
// something precedes it, so a column literally named "_img" is Plain.
func Classify(name string) Kind {
	kind, _ := match(name)
	return kind
}

// Suffix returns the name suffix that marks a kind, or "" for Plain.
func Suffix(k Kind) string {
	for _, s := range suffixes {
		if s.kind == k {
			return s.suffix
		}
	}
	return ""
}

func match(name string) (Kind, string) {
	kind, best := Plain, ""
	for _, s := range suffixes {
		if len(name) > len(s.suffix) && strings.HasSuffix(name, s.suffix) && len(s.suffix) > len(best) {
			kind, best = s.kind, s.suffix
		}
	}
	return kind, best
}

// Column is a named column with its derived Kind.
type Column struct {
	Name string
	Kind Kind
}

// New classifies name and returns the Column.
func New(name string) Column {
	return Column{Name: name, Kind: Classify(name)}
}

// Classified classifies every name, preserving order.
func Classified(names []string) []Column {
	cols := make([]Column, len(names))
	for i, n := range names {
		cols[i] = New(n)
	}
	return cols
}

// Base returns the column name without its kind suffix: cover_img -> cover.
// Plain columns are returned unchanged.
func (c Column) Base() string {
	if _, suffix := match(c.Name); suffix != "" {
		return strings.TrimSuffix(c.Name, suffix)
	}
	return c.Name
}
