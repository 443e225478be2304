package semantic

// SearchResult is a single vector search hit with its fact-sheet payload.
type SearchResult struct {
	ID       string  `json:"id"`
	Score    float32 `json:"score"`
	College  string  `json:"college"`
	Category string  `json:"category"`
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Language string  `json:"language"`
	Row      int     `json:"row"`
}

// VectorRecord is a single embedding to store, with its payload fields.
type VectorRecord struct {
	ID        string
	Embedding []float32
	Payload   map[string]any // college, category, question, answer, language, row
}
