// Package main implements the Sahayak query API server.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"

	"github.com/SahayakAI/sahayak-mvp/engine/corpus"
	"github.com/SahayakAI/sahayak-mvp/engine/domain"
	"github.com/SahayakAI/sahayak-mvp/engine/index"
	"github.com/SahayakAI/sahayak-mvp/engine/ingest"
	"github.com/SahayakAI/sahayak-mvp/engine/query"
	"github.com/SahayakAI/sahayak-mvp/engine/semantic"
	"github.com/SahayakAI/sahayak-mvp/engine/translate"
	"github.com/SahayakAI/sahayak-mvp/pkg/collegenlp"
	"github.com/SahayakAI/sahayak-mvp/pkg/metrics"
	"github.com/SahayakAI/sahayak-mvp/pkg/mid"
	"github.com/SahayakAI/sahayak-mvp/pkg/natsutil"
	"github.com/SahayakAI/sahayak-mvp/pkg/ollama"
)

// Config holds all environment-based configuration.
type Config struct {
	Port          string
	MetricsPort   int
	SnapshotPath  string
	OllamaURL     string
	EmbedModel    string
	QdrantURL     string
	Collection    string
	SearchBackend string // "memory" or "qdrant"
	NatsURL       string // empty disables hot reload
	TranslateURL  string // empty selects the offline adapter
	CORSOrigin    string
}

func loadConfig() Config {
	metricsPort, _ := strconv.Atoi(envOr("METRICS_PORT", "9090"))
	return Config{
		Port:          envOr("PORT", "8080"),
		MetricsPort:   metricsPort,
		SnapshotPath:  envOr("SNAPSHOT_PATH", "data/index.snapshot"),
		OllamaURL:     envOr("OLLAMA_URL", "http://localhost:11434"),
		EmbedModel:    envOr("EMBED_MODEL", "nomic-embed-text"),
		QdrantURL:     envOr("QDRANT_URL", "localhost:6334"),
		Collection:    envOr("QDRANT_COLLECTION", "sahayak"),
		SearchBackend: envOr("SEARCH_BACKEND", "memory"),
		NatsURL:       os.Getenv("NATS_URL"),
		TranslateURL:  os.Getenv("TRANSLATE_URL"),
		CORSOrigin:    envOr("CORS_ORIGIN", "*"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := loadConfig()

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Load snapshot and build the search backend ---
	// The snapshot must load even when Qdrant serves the vectors: college
	// extraction and /api/languages come from the corpus records. A missing
	// or corrupt snapshot aborts startup; the service never runs empty.
	snap, err := index.ReadSnapshot(cfg.SnapshotPath)
	if err != nil {
		return fmt.Errorf("load snapshot %s: %w", cfg.SnapshotPath, err)
	}
	set, err := snap.BuildSet()
	if err != nil {
		return fmt.Errorf("build indexes: %w", err)
	}
	logger.Info("snapshot loaded", "path", cfg.SnapshotPath, "model", snap.Model, "languages", set.Languages(), "records", set.Len())

	var searcher query.Searcher
	setSearcher := query.NewSetSearcher(set)
	switch cfg.SearchBackend {
	case "qdrant":
		vectorStore, err := semantic.New(cfg.QdrantURL, cfg.Collection)
		if err != nil {
			return fmt.Errorf("qdrant connect: %w", err)
		}
		defer vectorStore.Close()
		searcher = query.NewQdrantSearcher(vectorStore)
	default:
		searcher = setSearcher
	}

	// --- Translation ---
	cache := translate.NewCache()
	var translator translate.Translator
	if cfg.TranslateURL != "" {
		translator = translate.NewRemote(cfg.TranslateURL, cache, logger)
	} else {
		translator = translate.NewOffline()
	}

	// --- Query service ---
	var colleges []string
	for _, c := range snap.Corpora {
		colleges = append(colleges, corpus.Colleges(c.Records)...)
	}
	extractor := collegenlp.NewExtractor(colleges)

	reg := metrics.NewRegistry()
	reg.ServeAsync(cfg.MetricsPort)

	embedder := ollama.NewClient(cfg.OllamaURL, cfg.EmbedModel)
	svc := query.NewService(embedder, searcher, translator, extractor, reg, logger)

	// --- Snapshot hot reload over NATS ---
	if cfg.NatsURL != "" {
		nc, err := nats.Connect(cfg.NatsURL, nats.Name("sahayak-api"))
		if err != nil {
			return fmt.Errorf("nats connect: %w", err)
		}
		defer nc.Close()

		sub, err := natsutil.Subscribe(nc, ingest.RebuiltSubject, func(_ context.Context, event ingest.RebuiltEvent) {
			fresh, err := index.ReadSnapshot(cfg.SnapshotPath)
			if err != nil {
				logger.Error("hot reload: read snapshot", "err", err)
				return
			}
			freshSet, err := fresh.BuildSet()
			if err != nil {
				logger.Error("hot reload: build indexes", "err", err)
				return
			}
			setSearcher.Swap(freshSet)
			logger.Info("snapshot hot reloaded", "records", event.Records, "built_at", event.BuiltAt)
		})
		if err != nil {
			return fmt.Errorf("nats subscribe: %w", err)
		}
		defer sub.Unsubscribe()
	}

	// --- Build HTTP server ---
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.HandleFunc("GET /api/languages", handleLanguages(set))
	mux.HandleFunc("POST /api/query", handleQuery(svc, logger))

	handler := mid.Chain(mux,
		mid.Recover(logger),
		mid.Logger(logger),
		mid.CORS(cfg.CORSOrigin),
		mid.OTel("sahayak-api"),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// --- Graceful shutdown ---
	errCh := make(chan error, 1)
	go func() {
		logger.Info("api server starting", "port", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutCtx)
}

// --- Handlers ---

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// LanguagesResponse lists the languages the engine accepts and the subset
// with a dedicated corpus.
type LanguagesResponse struct {
	Supported map[string]string `json:"supported"`
	Indexed   []string          `json:"indexed"`
}

func handleLanguages(set *index.Set) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(LanguagesResponse{
			Supported: domain.SupportedLanguages,
			Indexed:   set.Languages(),
		})
	}
}

func handleQuery(svc *query.Service, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req query.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		resp, err := svc.Query(r.Context(), req)
		if err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				writeError(w, http.StatusBadRequest, verr.Error())
				return
			}
			logger.Error("query failed", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
