// Package ingest builds the searchable artifacts from the raw corpus: load,
// validate, embed per language, write the versioned snapshot, and optionally
// upsert into Qdrant. The pipeline is composed from fn stages so each step
// stays independently testable.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/SahayakAI/sahayak-mvp/engine/corpus"
	"github.com/SahayakAI/sahayak-mvp/engine/domain"
	"github.com/SahayakAI/sahayak-mvp/engine/index"
	"github.com/SahayakAI/sahayak-mvp/engine/semantic"
	"github.com/SahayakAI/sahayak-mvp/pkg/fn"
	"github.com/SahayakAI/sahayak-mvp/pkg/natsutil"
)

const (
	// RebuildSubject carries rebuild requests to the indexer.
	RebuildSubject = "engine.index.rebuild"
	// RebuiltSubject announces a freshly written snapshot.
	RebuiltSubject = "engine.index.rebuilt"
	// EmbedBatchSize is the max texts per embedding request.
	EmbedBatchSize = 100
)

// Embedder is the batch embedding capability the pipeline consumes.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Model() string
}

// Deps holds the external dependencies for the build pipeline.
type Deps struct {
	Embedder    Embedder
	VectorStore *semantic.VectorStore // nil disables the Qdrant upsert
	Logger      *slog.Logger
}

// --- Pipeline stages ---

// NewLoad reads and validates the corpus rooted at the given path.
func NewLoad(logger *slog.Logger) fn.Stage[string, []domain.Record] {
	return func(_ context.Context, root string) fn.Result[[]domain.Record] {
		records, _, err := corpus.Load(root, logger)
		return fn.FromPair(records, err)
	}
}

// Partition splits the corpus into per-language batches, ordered by
// language code so downstream output is deterministic.
var Partition fn.Stage[[]domain.Record, []LanguageBatch] = func(_ context.Context, records []domain.Record) fn.Result[[]LanguageBatch] {
	parts := corpus.ByLanguage(records)
	langs := make([]string, 0, len(parts))
	for lang := range parts {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	batches := fn.Map(langs, func(lang string) LanguageBatch {
		return LanguageBatch{Language: lang, Records: parts[lang]}
	})
	return fn.Ok(batches)
}

// NewEmbed embeds every batch, EmbedBatchSize texts per request. Row order
// follows record order within each language.
func NewEmbed(embedder Embedder) fn.Stage[[]LanguageBatch, []EmbeddedBatch] {
	return func(ctx context.Context, batches []LanguageBatch) fn.Result[[]EmbeddedBatch] {
		out := make([]EmbeddedBatch, 0, len(batches))
		for _, batch := range batches {
			texts := fn.Map(batch.Records, domain.Record.EmbedText)

			matrix := make([][]float32, 0, len(texts))
			for _, group := range fn.Chunk(texts, EmbedBatchSize) {
				vectors, err := embedder.EmbedBatch(ctx, group)
				if err != nil {
					return fn.Err[[]EmbeddedBatch](fmt.Errorf("ingest: embed %s corpus: %w", batch.Language, err))
				}
				matrix = append(matrix, vectors...)
			}
			out = append(out, EmbeddedBatch{LanguageBatch: batch, Matrix: matrix})
		}
		return fn.Ok(out)
	}
}

// NewSnapshot assembles the versioned snapshot from embedded batches.
func NewSnapshot(model string) fn.Stage[[]EmbeddedBatch, *index.Snapshot] {
	return func(_ context.Context, batches []EmbeddedBatch) fn.Result[*index.Snapshot] {
		snap := &index.Snapshot{
			Version: index.SnapshotVersion,
			Model:   model,
			BuiltAt: time.Now().UTC(),
		}
		for _, b := range batches {
			if snap.Dim == 0 && len(b.Matrix) > 0 {
				snap.Dim = len(b.Matrix[0])
			}
			snap.Corpora = append(snap.Corpora, index.LanguageCorpus{
				Language: b.Language,
				Records:  b.Records,
				Matrix:   b.Matrix,
			})
		}
		// Prove the snapshot builds valid indexes before it is persisted.
		if _, err := snap.BuildSet(); err != nil {
			return fn.Err[*index.Snapshot](fmt.Errorf("ingest: snapshot validation: %w", err))
		}
		return fn.Ok(snap)
	}
}

// NewStore upserts every embedded record into Qdrant with a point ID
// derived from (language, row), so re-ingesting overwrites in place.
func NewStore(vs *semantic.VectorStore) fn.Stage[[]EmbeddedBatch, []EmbeddedBatch] {
	return func(ctx context.Context, batches []EmbeddedBatch) fn.Result[[]EmbeddedBatch] {
		for _, b := range batches {
			records := make([]semantic.VectorRecord, len(b.Records))
			for i, rec := range b.Records {
				records[i] = semantic.VectorRecord{
					ID:        PointID(b.Language, i),
					Embedding: b.Matrix[i],
					Payload: map[string]any{
						"college":  rec.College,
						"category": rec.Category,
						"question": rec.Question,
						"answer":   rec.Answer,
						"language": rec.Language,
						"row":      i,
					},
				}
			}
			if err := vs.Upsert(ctx, records); err != nil {
				return fn.Err[[]EmbeddedBatch](fmt.Errorf("ingest: upsert %s corpus: %w", b.Language, err))
			}
		}
		return fn.Ok(batches)
	}
}

// PointID derives the deterministic Qdrant point ID for one corpus row.
func PointID(language string, row int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("%s-%d", language, row))).String()
}

// LoggedTap logs entry and exit of a stage with its duration.
func LoggedTap[T any](name string, log *slog.Logger) fn.Stage[T, T] {
	return func(ctx context.Context, t T) fn.Result[T] {
		log.Info("stage.enter", "stage", name)
		start := time.Now()
		defer func() {
			log.Info("stage.exit", "stage", name, "duration", time.Since(start))
		}()
		return fn.Ok(t)
	}
}

// NewPipeline composes the full build: load → partition → embed →
// (optional qdrant upsert) → snapshot.
func NewPipeline(deps Deps) fn.Stage[string, *index.Snapshot] {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	loaded := fn.Then(LoggedTap[string]("load", log), NewLoad(log))
	partitioned := fn.Then(loaded, Partition)
	embedded := fn.Then(partitioned, fn.Then(LoggedTap[[]LanguageBatch]("embed", log), NewEmbed(deps.Embedder)))
	if deps.VectorStore != nil {
		embedded = fn.Then(embedded, fn.Then(LoggedTap[[]EmbeddedBatch]("store", log), NewStore(deps.VectorStore)))
	}
	return fn.Then(embedded, fn.TracedStage("snapshot", NewSnapshot(deps.Embedder.Model())))
}

// Build runs the pipeline and writes the snapshot to snapshotPath,
// returning the event describing the new artifact.
func Build(ctx context.Context, deps Deps, root, snapshotPath string) (RebuiltEvent, error) {
	pipeline := NewPipeline(deps)

	snap, err := pipeline(ctx, root).Unwrap()
	if err != nil {
		return RebuiltEvent{}, err
	}
	if err := snap.Write(snapshotPath); err != nil {
		return RebuiltEvent{}, err
	}

	total := 0
	langs := make([]string, 0, len(snap.Corpora))
	for _, c := range snap.Corpora {
		total += len(c.Records)
		langs = append(langs, c.Language)
	}
	return RebuiltEvent{
		SnapshotPath: snapshotPath,
		Model:        snap.Model,
		Records:      total,
		Languages:    langs,
		BuiltAt:      snap.BuiltAt,
	}, nil
}

// StartConsumer subscribes to rebuild requests: each one runs a full build
// and announces the result on RebuiltSubject. Build failures are logged and
// swallowed; the previous snapshot stays live.
func StartConsumer(nc *nats.Conn, deps Deps, root, snapshotPath string) (*nats.Subscription, error) {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	return natsutil.Subscribe(nc, RebuildSubject, func(ctx context.Context, req RebuildRequest) {
		log.Info("ingest: rebuild requested", "reason", req.Reason)
		event, err := Build(ctx, deps, root, snapshotPath)
		if err != nil {
			log.Error("ingest: rebuild failed", "error", err)
			return
		}
		if err := natsutil.Publish(ctx, nc, RebuiltSubject, event); err != nil {
			log.Error("ingest: publish rebuilt event", "error", err)
		}
	})
}
