// Package collegenlp extracts college mentions from unstructured question
// text using alias matching over the corpus's college names. No external
// dependencies.
package collegenlp

import (
	"sort"
	"strings"
	"unicode"
)

// Match is an extracted college mention.
type Match struct {
	College    string  // canonical name as it appears in the corpus
	Confidence float64 // 0.0-1.0
	Span       string  // the alias that matched
}

// acronymStopwords are skipped when deriving an acronym from a name.
var acronymStopwords = map[string]bool{
	"of": true, "and": true, "the": true, "for": true,
}

// Extractor matches college names and derived aliases in free text.
type Extractor struct {
	byAlias map[string]aliasEntry
	aliases []string // sorted longest first so specific names win
}

type aliasEntry struct {
	college    string
	confidence float64
}

// NewExtractor builds an extractor over the given canonical college names.
// For each name it indexes the full name and, when long enough to be
// distinctive, an acronym built from its initials (e.g. "Indian Institute
// of Technology Bombay" -> "iitb").
func NewExtractor(colleges []string) *Extractor {
	e := &Extractor{byAlias: make(map[string]aliasEntry)}

	for _, name := range colleges {
		canonical := strings.TrimSpace(name)
		if canonical == "" {
			continue
		}
		lower := strings.ToLower(canonical)
		e.add(lower, canonical, 1.0)

		if acr := acronym(lower); len(acr) >= 3 {
			e.add(acr, canonical, 0.8)
		}

		// "Indian Institute of Technology Bombay" is usually spoken as
		// "IIT Bombay": acronym of the body plus the trailing place name.
		words := strings.Fields(lower)
		if len(words) >= 3 {
			last := words[len(words)-1]
			if body := acronym(strings.Join(words[:len(words)-1], " ")); len(body) >= 2 && !acronymStopwords[last] {
				e.add(body+" "+last, canonical, 0.9)
			}
		}
	}

	for alias := range e.byAlias {
		e.aliases = append(e.aliases, alias)
	}
	sort.Slice(e.aliases, func(i, j int) bool {
		if len(e.aliases[i]) != len(e.aliases[j]) {
			return len(e.aliases[i]) > len(e.aliases[j])
		}
		return e.aliases[i] < e.aliases[j]
	})
	return e
}

func (e *Extractor) add(alias, college string, confidence float64) {
	if existing, ok := e.byAlias[alias]; ok && existing.confidence >= confidence {
		// Ambiguous alias shared by multiple colleges: keep the one that
		// got there first at equal confidence, prefer full-name matches.
		return
	}
	e.byAlias[alias] = aliasEntry{college: college, confidence: confidence}
}

// Extract returns the best college mention in text, if any. Longer aliases
// are tried first, so "IIT Bombay" beats "IIT".
func (e *Extractor) Extract(text string) (Match, bool) {
	padded := " " + normalize(text) + " "
	for _, alias := range e.aliases {
		if strings.Contains(padded, " "+alias+" ") {
			entry := e.byAlias[alias]
			return Match{College: entry.college, Confidence: entry.confidence, Span: alias}, true
		}
	}
	return Match{}, false
}

// acronym derives the initials of a lowercase name, skipping stopwords.
func acronym(lower string) string {
	var b strings.Builder
	for _, word := range strings.Fields(lower) {
		if acronymStopwords[word] {
			continue
		}
		r := []rune(word)
		if len(r) > 0 && unicode.IsLetter(r[0]) {
			b.WriteRune(r[0])
		}
	}
	return b.String()
}

// normalize lowercases and strips punctuation so "fee at IIT-Bombay?"
// matches "iit bombay".
func normalize(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
