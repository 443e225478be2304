package index

import (
	"sort"

	"github.com/SahayakAI/sahayak-mvp/engine/domain"
)

// Set holds one independent Index per corpus language. Languages never share
// embeddings: translation happens at the text level, before re-embedding.
type Set struct {
	byLang map[string]*Index
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{byLang: make(map[string]*Index)}
}

// Add registers an index under its language, replacing any previous one.
func (s *Set) Add(ix *Index) {
	s.byLang[ix.Language()] = ix
}

// Select returns the index serving the given language: the language's own
// index when present and non-empty, otherwise the English fallback. The
// second return is false when no usable index exists at all.
func (s *Set) Select(lang string) (*Index, bool) {
	if ix, ok := s.byLang[lang]; ok && ix.Len() > 0 {
		return ix, true
	}
	if ix, ok := s.byLang[domain.LangEnglish]; ok && ix.Len() > 0 {
		return ix, true
	}
	return nil, false
}

// Languages lists the corpus languages with a usable index, sorted.
func (s *Set) Languages() []string {
	var out []string
	for lang, ix := range s.byLang {
		if ix.Len() > 0 {
			out = append(out, lang)
		}
	}
	sort.Strings(out)
	return out
}

// Len is the total record count across all languages.
func (s *Set) Len() int {
	total := 0
	for _, ix := range s.byLang {
		total += ix.Len()
	}
	return total
}
