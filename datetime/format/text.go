package format

import (
	"sort"

	"golang.org/x/text/language"

	"github.com/theory/datetime/datetime/field"
)

// TextStyle selects how wide a textual field name prints, e.g. "January",
// "Jan", or "J" for month one.
type TextStyle int

// Text styles, widest first.
const (
	TextFull   TextStyle = iota // Full
	TextShort                   // Short
	TextNarrow                  // Narrow
)

// textStyleNames maps styles to display strings for error messages.
var textStyleNames = []string{"Full", "Short", "Narrow"}

func (s TextStyle) String() string {
	if s < TextFull || s > TextNarrow {
		return "TextStyle(unknown)"
	}
	return textStyleNames[s]
}

// TextProvider supplies localized names for textual fields. Name returns
// the empty string when it has no name for the value; Lookup returns the
// candidate (value, name) pairs for a field so parsers can longest-match.
type TextProvider interface {
	// Name returns the localized name of value for f in style, or "".
	Name(loc language.Tag, f field.Field, value int64, style TextStyle) string

	// Lookup returns every (value, name) pair for f in style, longest
	// names first so prefix matching is unambiguous.
	Lookup(loc language.Tag, f field.Field, style TextStyle) []TextEntry
}

// TextEntry pairs a field value with one of its localized names.
type TextEntry struct {
	Value int64
	Name  string
}

// textSymbols is the name data for one locale.
type textSymbols struct {
	monthsFull, monthsShort, monthsNarrow []string
	daysFull, daysShort, daysNarrow       []string
	amPm                                  []string
}

// localeProvider is the built-in TextProvider: symbol tables keyed by
// language tag, selected by matching the requested locale against the
// supported tags. A locale the matcher cannot place has no names at all.
type localeProvider struct {
	matcher language.Matcher
	tables  []*textSymbols
}

var englishSymbols = &textSymbols{
	monthsFull: []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	monthsShort: []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	monthsNarrow: []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	daysFull: []string{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
	},
	daysShort:  []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	daysNarrow: []string{"M", "T", "W", "T", "F", "S", "S"},
	amPm:       []string{"AM", "PM"},
}

// newEnglishProvider returns the built-in provider, stocked with English.
func newEnglishProvider() TextProvider {
	return &localeProvider{
		matcher: language.NewMatcher([]language.Tag{language.English}),
		tables:  []*textSymbols{englishSymbols},
	}
}

// symbols resolves loc to one of the supported tables, or nil when the
// matcher finds no usable supported tag for it.
func (p *localeProvider) symbols(loc language.Tag) *textSymbols {
	_, i, conf := p.matcher.Match(loc)
	if conf == language.No {
		return nil
	}
	return p.tables[i]
}

// table returns the 1-based (or 0-based for AM/PM) name table for f in
// style, or nil when f has no text.
func (s *textSymbols) table(f field.Field, style TextStyle) (names []string, base int64) {
	switch f {
	case field.MonthOfYear:
		switch style {
		case TextFull:
			return s.monthsFull, 1
		case TextShort:
			return s.monthsShort, 1
		default:
			return s.monthsNarrow, 1
		}
	case field.DayOfWeek:
		switch style {
		case TextFull:
			return s.daysFull, 1
		case TextShort:
			return s.daysShort, 1
		default:
			return s.daysNarrow, 1
		}
	case field.AmPmOfDay:
		return s.amPm, 0
	default:
		return nil, 0
	}
}

// Name implements [TextProvider].
func (p *localeProvider) Name(loc language.Tag, f field.Field, value int64, style TextStyle) string {
	s := p.symbols(loc)
	if s == nil {
		return ""
	}
	names, base := s.table(f, style)
	if names == nil {
		return ""
	}
	i := value - base
	if i < 0 || i >= int64(len(names)) {
		return ""
	}
	return names[i]
}

// Lookup implements [TextProvider].
func (p *localeProvider) Lookup(loc language.Tag, f field.Field, style TextStyle) []TextEntry {
	s := p.symbols(loc)
	if s == nil {
		return nil
	}
	names, base := s.table(f, style)
	if names == nil {
		return nil
	}
	entries := make([]TextEntry, len(names))
	for i, n := range names {
		entries[i] = TextEntry{Value: base + int64(i), Name: n}
	}
	// Longest first, so a prefix such as "Jun" never wins over "June".
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].Name) > len(entries[j].Name)
	})
	return entries
}
