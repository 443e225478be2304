package translate

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/SahayakAI/sahayak-mvp/engine/domain"
)

// Script-block patterns for the Indian languages the engine serves. A single
// matching rune is enough to identify the query script; mixed-script text
// resolves to the first block matched in this order.
var scriptPatterns = []struct {
	lang    string
	pattern *regexp.Regexp
}{
	{"hi", regexp.MustCompile(`[\x{0900}-\x{097F}]`)}, // Devanagari
	{"bn", regexp.MustCompile(`[\x{0980}-\x{09FF}]`)}, // Bengali
	{"pa", regexp.MustCompile(`[\x{0A00}-\x{0A7F}]`)}, // Gurmukhi
	{"ta", regexp.MustCompile(`[\x{0B80}-\x{0BFF}]`)}, // Tamil
	{"te", regexp.MustCompile(`[\x{0C00}-\x{0C7F}]`)}, // Telugu
}

// romanHints catches romanized queries: language-specific function words
// that rarely appear in English text.
var romanHints = map[string][]string{
	"hi": {"kya", "kaise", "kitna", "kitni", "hai", "mein", "kaun"},
	"ta": {"enna", "eppadi", "evvalavu", "enge", "irukku"},
	"te": {"emiti", "ela", "enta", "ekkada", "undi"},
	"bn": {"kemon", "koto", "kothay", "ache"},
}

// Offline is the no-network translation adapter: Unicode-block detection
// plus word-by-word dictionary substitution. It is deliberately best-effort;
// the pipeline only needs it to get domain vocabulary (fees, hostel,
// admission) into English so the embedding lands in the right neighborhood.
type Offline struct {
	toEnglish   map[string]map[string]string
	fromEnglish map[string]map[string]string
}

// NewOffline builds the offline adapter with its built-in dictionaries.
func NewOffline() *Offline {
	o := &Offline{
		toEnglish:   dictionaries,
		fromEnglish: make(map[string]map[string]string, len(dictionaries)),
	}
	for lang, dict := range dictionaries {
		rev := make(map[string]string, len(dict))
		for word, en := range dict {
			// First mapping wins on collision so reversal is stable.
			if _, ok := rev[en]; !ok {
				rev[en] = word
			}
		}
		o.fromEnglish[lang] = rev
	}
	return o
}

// Detect identifies the language of text by script block, falling back to
// romanized function-word hints, and finally to English. Empty text wraps
// domain.ErrUnknownLanguage.
func (o *Offline) Detect(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.NewValidationError("text", text, domain.ErrUnknownLanguage)
	}
	for _, sp := range scriptPatterns {
		if sp.pattern.MatchString(text) {
			return sp.lang, nil
		}
	}

	words := tokenize(text)
	for lang, hints := range romanHints {
		for _, hint := range hints {
			for _, w := range words {
				if w == hint {
					return lang, nil
				}
			}
		}
	}
	return domain.LangEnglish, nil
}

// Translate substitutes dictionary words one at a time, keeping unknown
// words as-is. Same source and target is the identity. An unsupported
// language pair wraps domain.ErrTranslationUnavailable.
func (o *Offline) Translate(_ context.Context, text, source, target string) (string, error) {
	if source == target {
		return text, nil
	}

	var dict map[string]string
	switch {
	case target == domain.LangEnglish:
		dict = o.toEnglish[source]
	case source == domain.LangEnglish:
		dict = o.fromEnglish[target]
	}
	if dict == nil {
		return "", domain.NewValidationError("language", source+"->"+target, domain.ErrTranslationUnavailable)
	}

	words := strings.Fields(text)
	for i, w := range words {
		core, trailing := splitTrailingPunct(w)
		if en, ok := dict[strings.ToLower(core)]; ok {
			words[i] = en + trailing
		}
	}
	return strings.Join(words, " "), nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// splitTrailingPunct separates trailing punctuation so "फीस?" still matches
// the dictionary entry for "फीस".
func splitTrailingPunct(w string) (core, trailing string) {
	runes := []rune(w)
	i := len(runes)
	for i > 0 && (unicode.IsPunct(runes[i-1]) || unicode.IsSymbol(runes[i-1])) {
		i--
	}
	return string(runes[:i]), string(runes[i:])
}
