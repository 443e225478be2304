// Command indexer builds the search artifacts from the fact-sheet corpus:
// it loads every college directory, embeds all records per language, writes
// the versioned snapshot, and optionally upserts vectors into Qdrant and
// announces the rebuild over NATS so running API instances hot-reload.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"

	"github.com/SahayakAI/sahayak-mvp/engine/ingest"
	"github.com/SahayakAI/sahayak-mvp/engine/semantic"
	"github.com/SahayakAI/sahayak-mvp/pkg/natsutil"
	"github.com/SahayakAI/sahayak-mvp/pkg/ollama"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	var (
		corpusDir    = flag.String("corpus", envOr("CORPUS_DIR", "data/colleges"), "corpus root directory")
		snapshotPath = flag.String("snapshot", envOr("SNAPSHOT_PATH", "data/index.snapshot"), "snapshot output path")
		useQdrant    = flag.Bool("qdrant", false, "also upsert vectors into Qdrant")
		watch        = flag.Bool("watch", false, "stay running and rebuild on NATS requests")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	deps := ingest.Deps{
		Embedder: ollama.NewClient(envOr("OLLAMA_URL", "http://localhost:11434"), envOr("EMBED_MODEL", "nomic-embed-text")),
		Logger:   logger,
	}

	if *useQdrant {
		vs, err := semantic.New(envOr("QDRANT_URL", "localhost:6334"), envOr("QDRANT_COLLECTION", "sahayak"))
		if err != nil {
			logger.Error("qdrant connect", "err", err)
			os.Exit(1)
		}
		defer vs.Close()
		deps.VectorStore = vs
	}

	event, err := ingest.Build(ctx, deps, *corpusDir, *snapshotPath)
	if err != nil {
		logger.Error("build failed", "err", err)
		os.Exit(1)
	}
	logger.Info("snapshot written",
		"path", event.SnapshotPath,
		"model", event.Model,
		"records", event.Records,
		"languages", event.Languages,
	)

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		return
	}

	nc, err := nats.Connect(natsURL, nats.Name("sahayak-indexer"))
	if err != nil {
		logger.Error("nats connect", "err", err)
		os.Exit(1)
	}
	defer nc.Close()

	if err := natsutil.Publish(ctx, nc, ingest.RebuiltSubject, event); err != nil {
		logger.Error("publish rebuilt event", "err", err)
	}

	if !*watch {
		return
	}

	sub, err := ingest.StartConsumer(nc, deps, *corpusDir, *snapshotPath)
	if err != nil {
		logger.Error("start consumer", "err", err)
		os.Exit(1)
	}
	defer sub.Unsubscribe()

	logger.Info("watching for rebuild requests", "subject", ingest.RebuildSubject)
	<-ctx.Done()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
