// Package domain defines core domain types, constants, and validation for
// the Sahayak retrieval pipeline. It acts as the validation gate at pipeline
// entry points.
package domain

// LangEnglish is the corpus base language. Every deployment carries an
// English corpus; other languages are optional replicas.
const LangEnglish = "en"

// Record is the unit of retrieval: one question/answer pair attributed to a
// single college fact sheet. Records are addressed by position within one
// language's corpus, so the order produced by the loader is load-bearing.
type Record struct {
	College  string   `json:"college"`
	Category string   `json:"category"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords,omitempty"`
	Language string   `json:"language"`
}

// EmbedText returns the text actually embedded for a record: the question
// enriched with its keywords, so keyword-heavy queries still land nearby.
func (r Record) EmbedText() string {
	text := r.Question
	for _, kw := range r.Keywords {
		text += " " + kw
	}
	return text
}

// Category classifies a fact-sheet topic.
type Category string

const (
	CategoryAdmissions   Category = "Admissions"
	CategoryFees         Category = "Fees"
	CategoryPlacements   Category = "Placements"
	CategoryCourses      Category = "Courses"
	CategoryHostel       Category = "Hostel"
	CategoryFacilities   Category = "Facilities"
	CategoryScholarships Category = "Scholarships"
	CategoryGeneral      Category = "General"
)

// ValidCategories is the set of recognised fact-sheet categories.
var ValidCategories = map[Category]bool{
	CategoryAdmissions: true, CategoryFees: true, CategoryPlacements: true,
	CategoryCourses: true, CategoryHostel: true, CategoryFacilities: true,
	CategoryScholarships: true, CategoryGeneral: true,
}

// SupportedLanguages maps language codes the engine can serve to their
// display names. Languages without a dedicated corpus are served through
// translation over the English index.
var SupportedLanguages = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"bn": "Bengali",
	"ta": "Tamil",
	"te": "Telugu",
	"pa": "Punjabi",
}
