package ingest

import (
	"time"

	"github.com/SahayakAI/sahayak-mvp/engine/domain"
)

// LanguageBatch is one language's slice of the corpus, in load order.
type LanguageBatch struct {
	Language string
	Records  []domain.Record
}

// EmbeddedBatch pairs a language batch with its embedding matrix, row i
// holding the vector for record i.
type EmbeddedBatch struct {
	LanguageBatch
	Matrix [][]float32
}

// RebuildRequest asks the indexer for a full corpus rebuild.
type RebuildRequest struct {
	Reason string `json:"reason,omitempty"`
}

// RebuiltEvent announces a freshly written snapshot. API instances reload
// on receipt.
type RebuiltEvent struct {
	SnapshotPath string    `json:"snapshot_path"`
	Model        string    `json:"model"`
	Records      int       `json:"records"`
	Languages    []string  `json:"languages"`
	BuiltAt      time.Time `json:"built_at"`
}
