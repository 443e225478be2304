package query

import (
	"context"
	"sync"

	"github.com/SahayakAI/sahayak-mvp/engine/domain"
	"github.com/SahayakAI/sahayak-mvp/engine/index"
	"github.com/SahayakAI/sahayak-mvp/engine/semantic"
)

// Match couples a record with its similarity score, backend-independent.
type Match struct {
	Record domain.Record
	Score  float32
}

// Searcher is the vector search contract the service runs on. Implementations
// return the language actually served, which differs from the requested one
// when the English corpus stands in for a missing language replica. An empty
// match list with a nil error means the backend simply has nothing.
type Searcher interface {
	Search(ctx context.Context, language string, vector []float32, k int) ([]Match, string, error)
}

// SetSearcher serves queries from an in-memory index set. The set is swapped
// wholesale on rebuild, never mutated, so a read lock around Select is the
// only synchronization needed.
type SetSearcher struct {
	mu  sync.RWMutex
	set *index.Set
}

// NewSetSearcher wraps an index set.
func NewSetSearcher(set *index.Set) *SetSearcher {
	return &SetSearcher{set: set}
}

// Swap atomically replaces the index set. Used for snapshot hot reload.
func (s *SetSearcher) Swap(set *index.Set) {
	s.mu.Lock()
	s.set = set
	s.mu.Unlock()
}

// Search selects the index for language (English standing in when no
// dedicated corpus exists) and runs the brute-force scan.
func (s *SetSearcher) Search(_ context.Context, language string, vector []float32, k int) ([]Match, string, error) {
	s.mu.RLock()
	set := s.set
	s.mu.RUnlock()

	ix, ok := set.Select(language)
	if !ok {
		return nil, "", nil
	}

	hits := ix.Search(vector, k)
	matches := make([]Match, len(hits))
	for i, h := range hits {
		matches[i] = Match{Record: ix.Record(h.Row), Score: h.Score}
	}
	return matches, ix.Language(), nil
}

// QdrantSearcher serves queries from a Qdrant collection, filtering by the
// language payload field and retrying against English when the requested
// language has no points.
type QdrantSearcher struct {
	store *semantic.VectorStore
}

// NewQdrantSearcher wraps a vector store.
func NewQdrantSearcher(store *semantic.VectorStore) *QdrantSearcher {
	return &QdrantSearcher{store: store}
}

func (s *QdrantSearcher) Search(ctx context.Context, language string, vector []float32, k int) ([]Match, string, error) {
	served := language
	results, err := s.store.SearchFiltered(ctx, vector, k, map[string]string{"language": language})
	if err != nil {
		return nil, "", err
	}
	if len(results) == 0 && language != domain.LangEnglish {
		served = domain.LangEnglish
		results, err = s.store.SearchFiltered(ctx, vector, k, map[string]string{"language": served})
		if err != nil {
			return nil, "", err
		}
	}

	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Record: domain.Record{
				College:  r.College,
				Category: r.Category,
				Question: r.Question,
				Answer:   r.Answer,
				Language: r.Language,
			},
			Score: r.Score,
		}
	}
	return matches, served, nil
}
