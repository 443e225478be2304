package corpus

import (
	"strings"
	"unicode"

	"github.com/SahayakAI/sahayak-mvp/engine/domain"
)

// NormalizeText is the single text-normalization pass applied at corpus
// build time. It is pure and idempotent: NormalizeText(NormalizeText(s))
// equals NormalizeText(s). It cleans the artifacts templated generators
// leave behind rather than patching them after the fact.
func NormalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var prev rune
	for _, r := range s {
		switch {
		case r == '\uFEFF' || r == '\u200B' || r == '\u200C' || r == '\u200D':
			continue // BOM and zero-width characters
		case unicode.IsControl(r) || r == ' ':
			r = ' '
		}
		// Collapse runs of terminal punctuation ("??", "!!", "..").
		if (r == '?' || r == '!' || r == '.') && r == prev {
			continue
		}
		b.WriteRune(r)
		prev = r
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// NormalizeRecord applies NormalizeText to every text field of a record and
// drops empty keywords.
func NormalizeRecord(rec domain.Record) domain.Record {
	rec.College = NormalizeText(rec.College)
	rec.Category = NormalizeText(rec.Category)
	rec.Question = NormalizeText(rec.Question)
	rec.Answer = NormalizeText(rec.Answer)

	var kws []string
	for _, kw := range rec.Keywords {
		if clean := NormalizeText(kw); clean != "" {
			kws = append(kws, clean)
		}
	}
	rec.Keywords = kws
	return rec
}
