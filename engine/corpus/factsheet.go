// Package corpus loads college fact sheets from disk into the ordered record
// sequence the index is built over. The on-disk layout is one directory per
// college containing a fixed-name JSON fact sheet.
package corpus

// FactSheetFile is the fixed file name read from every college directory.
const FactSheetFile = "faq.json"

// factSheet mirrors the on-disk JSON. The loosely-typed file is converted to
// fixed-field domain.Records at load time; anything that does not fit is
// quarantined there, never propagated.
type factSheet struct {
	CollegeName string                `json:"college_name"`
	Language    string                `json:"language,omitempty"`
	FAQs        map[string][]faqEntry `json:"faqs"`
}

type faqEntry struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords,omitempty"`
}
