// Package normalize cleans free text submitted for customer records
// Pipeline order for Text
// 1 drop control runes and invalid UTF-8
// 2 Unicode NFC so composed and decomposed accents compare equal
// 3 strip zero width format characters
// 4 width fold fullwidth forms
// 5 collapse whitespace to single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains, a chain is stateful and not shareable
var textPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

var foldPool = sync.Pool{
	New: func() any { return cases.Fold() },
}

// Text returns the cleaned form of a name or other display string
func Text(s string) string {
	if s == "" {
		return ""
	}
	s = sanitize(s)
	tr := textPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	textPool.Put(tr)
	if err != nil {
		out = s
	}
	return collapseSpaces(out)
}

// Email trims and case folds an address, mailbox providers treat both as equal
func Email(s string) string {
	s = strings.TrimSpace(sanitize(s))
	if s == "" {
		return ""
	}
	c := foldPool.Get().(cases.Caser)
	out := c.String(s)
	foldPool.Put(c)
	return out
}

// SearchTerm cleans a list filter and escapes LIKE wildcards
// the result is meant for ILIKE '%' || $n || '%'
func SearchTerm(s string) string {
	s = Text(s)
	if s == "" {
		return ""
	}
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// sanitize drops NUL, ASCII and C1 controls and invalid bytes
func sanitize(s string) string {
	clean := true
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || isControl(r) {
			clean = false
			break
		}
		i += size
	}
	if clean {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !(r == utf8.RuneError && size == 1) && !isControl(r) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func isControl(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	return r < 0x20 || r == 0x7F || (r >= 0x80 && r <= 0x9F)
}

// collapseSpaces converts whitespace runs to a single ASCII space and trims
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
