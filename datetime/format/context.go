package format

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/theory/datetime/datetime/chrono"
	"github.com/theory/datetime/datetime/field"
)

// printContext carries per-call state while printing: the source value and
// the formatter's locale, chronology, and symbol provider.
type printContext struct {
	value    field.Accessor
	chrono   chrono.Chronology
	locale   language.Tag
	provider TextProvider
}

// getField reads f from the source value, failing with the value's own
// ErrUnsupported when it does not carry f.
func (ctx *printContext) getField(f field.Field) (int64, error) {
	return f.GetFrom(ctx.value)
}

// chronology returns the chronology in effect: the source value's own when
// it carries one, the formatter's otherwise.
func (ctx *printContext) chronology() chrono.Chronology {
	if c, ok := ctx.value.(interface{ Chronology() chrono.Chronology }); ok {
		return c.Chronology()
	}
	return ctx.chrono
}

// ParseContext carries per-call mutable state while parsing: the in-progress
// accumulator, the case-sensitivity flag, and the chronology and locale in
// effect. A fresh context is created for every parse call and never shared.
type ParseContext struct {
	caseSensitive bool
	chrono        chrono.Chronology
	locale        language.Tag
	provider      TextProvider
	parsed        *FieldValues
}

func newParseContext(c chrono.Chronology, loc language.Tag, p TextProvider) *ParseContext {
	return &ParseContext{
		caseSensitive: true,
		chrono:        c,
		locale:        loc,
		provider:      p,
		parsed:        NewFieldValues(),
	}
}

// CaseSensitive reports whether literal and name matching currently honors
// case. Case-toggle nodes flip it mid-chain.
func (ctx *ParseContext) CaseSensitive() bool { return ctx.caseSensitive }

// Chronology returns the chronology in effect for this parse.
func (ctx *ParseContext) Chronology() chrono.Chronology { return ctx.chrono }

// Parsed returns the in-progress accumulator.
func (ctx *ParseContext) Parsed() *FieldValues { return ctx.parsed }

// setParsed inserts a decoded field value, failing on a conflicting
// re-insert.
func (ctx *ParseContext) setParsed(f field.Field, v int64) error {
	return ctx.parsed.Put(f, v)
}

// subMatch matches want at text[pos:] under the current case-sensitivity
// flag, returning how many input bytes matched. Folded case pairs can
// differ in encoded length (the Kelvin sign folds to "k"), so the count
// comes from the input, not from want.
func (ctx *ParseContext) subMatch(text string, pos int, want string) (int, bool) {
	if pos > len(text) {
		return 0, false
	}
	if ctx.caseSensitive {
		if !strings.HasPrefix(text[pos:], want) {
			return 0, false
		}
		return len(want), true
	}
	return foldPrefix(text[pos:], want)
}

// foldPrefix reports how many leading bytes of text case-fold to want,
// advancing both strings rune by rune.
func foldPrefix(text, want string) (int, bool) {
	n := 0
	for len(want) > 0 {
		if n >= len(text) {
			return 0, false
		}
		rt, nt := utf8.DecodeRuneInString(text[n:])
		rw, nw := utf8.DecodeRuneInString(want)
		if unicode.ToLower(rt) != unicode.ToLower(rw) {
			return 0, false
		}
		n += nt
		want = want[nw:]
	}
	return n, true
}
