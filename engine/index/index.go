// Package index implements the in-memory nearest-neighbour index over the
// embedded corpus. Vectors are L2-normalized at build time so inner product
// equals cosine similarity. The index is rebuild-only: any corpus change
// means building a fresh Index.
package index

import (
	"fmt"
	"math"
	"sort"

	"github.com/SahayakAI/sahayak-mvp/engine/domain"
)

// Hit is a single search result: a corpus row and its cosine similarity.
type Hit struct {
	Row   int
	Score float32
}

// Index owns a normalized copy of one language's embedding matrix together
// with the records those rows describe.
type Index struct {
	language string
	records  []domain.Record
	vectors  [][]float32
	dim      int
}

// Build copies and normalizes the embedding matrix and pairs it with its
// records. Row i of the matrix must embed records[i]; the positional pairing
// is the only record addressing the index supports.
func Build(language string, records []domain.Record, matrix [][]float32) (*Index, error) {
	if len(records) == 0 || len(matrix) == 0 {
		return nil, fmt.Errorf("index: build %s over empty corpus: %w", language, domain.ErrIndexBuild)
	}
	if len(records) != len(matrix) {
		return nil, fmt.Errorf("index: build %s: %d records vs %d rows: %w",
			language, len(records), len(matrix), domain.ErrIndexBuild)
	}

	dim := len(matrix[0])
	if dim == 0 {
		return nil, fmt.Errorf("index: build %s: zero-dimension embedding: %w", language, domain.ErrIndexBuild)
	}

	vectors := make([][]float32, len(matrix))
	for i, row := range matrix {
		if len(row) != dim {
			return nil, fmt.Errorf("index: build %s: row %d has dim %d, want %d: %w",
				language, i, len(row), dim, domain.ErrIndexBuild)
		}
		vectors[i] = normalize(row)
	}

	recs := make([]domain.Record, len(records))
	copy(recs, records)

	return &Index{language: language, records: recs, vectors: vectors, dim: dim}, nil
}

// Search returns up to k rows ordered by descending similarity. Ties keep
// corpus row order. k <= 0 or a dimension mismatch yields no results.
func (ix *Index) Search(query []float32, k int) []Hit {
	if k <= 0 || len(query) != ix.dim {
		return nil
	}

	q := normalize(query)
	hits := make([]Hit, len(ix.vectors))
	for i, v := range ix.vectors {
		hits[i] = Hit{Row: i, Score: dot(q, v)}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Score > hits[b].Score
	})

	if k > len(hits) {
		k = len(hits)
	}
	return hits[:k]
}

// Record returns the record behind a search hit row.
func (ix *Index) Record(row int) domain.Record { return ix.records[row] }

// Records returns all records in corpus order.
func (ix *Index) Records() []domain.Record { return ix.records }

// Len is the corpus size.
func (ix *Index) Len() int { return len(ix.records) }

// Dim is the embedding dimension.
func (ix *Index) Dim() int { return ix.dim }

// Language is the corpus language code of this index.
func (ix *Index) Language() string { return ix.language }

// normalize returns an L2-normalized copy of v. A zero vector is returned
// as a zero copy rather than dividing by zero.
func normalize(v []float32) []float32 {
	out := make([]float32, len(v))
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return out
	}
	inv := float32(1 / math.Sqrt(sum))
	for i, x := range v {
		out[i] = x * inv
	}
	return out
}

func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
