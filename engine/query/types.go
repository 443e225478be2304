package query

import "time"

// DefaultTopK is the result count used when the request leaves top_k unset.
const DefaultTopK = 5

// MinSimilarity is the floor applied to every backend's scores before a hit
// becomes a result. One explicit constant, applied uniformly; there is no
// per-language or per-category tuning.
const MinSimilarity = 0.30

// Request is one question against the corpus.
type Request struct {
	Question string `json:"question"`
	Language string `json:"language,omitempty"`
	TopK     int    `json:"top_k,omitempty"`
}

// Result is one ranked answer. Confidence is the similarity score projected
// onto a 0-100 scale. Translated reports whether the answer text was
// successfully rendered in the query language.
type Result struct {
	Rank       int     `json:"rank"`
	College    string  `json:"college"`
	Category   string  `json:"category"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language"`
	Translated bool    `json:"translated"`
}

// Response is the full answer set for one request.
type Response struct {
	Query        string    `json:"query"`
	Results      []Result  `json:"results"`
	TotalResults int       `json:"total_results"`
	Language     string    `json:"language"`
	Timestamp    time.Time `json:"timestamp"`
}
