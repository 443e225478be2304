// Command ask is an interactive terminal client for the query engine. It
// loads the snapshot directly, so it works with no API server running:
// useful for smoke-testing a freshly built index.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"

	"github.com/SahayakAI/sahayak-mvp/engine/corpus"
	"github.com/SahayakAI/sahayak-mvp/engine/index"
	"github.com/SahayakAI/sahayak-mvp/engine/query"
	"github.com/SahayakAI/sahayak-mvp/engine/translate"
	"github.com/SahayakAI/sahayak-mvp/pkg/collegenlp"
	"github.com/SahayakAI/sahayak-mvp/pkg/ollama"
)

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	var (
		snapshotPath = flag.String("snapshot", envOr("SNAPSHOT_PATH", "data/index.snapshot"), "snapshot path")
		topK         = flag.Int("k", query.DefaultTopK, "results per question")
		language     = flag.String("lang", "", "force query language (default: detect)")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	snap, err := index.ReadSnapshot(*snapshotPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load snapshot: %v\n", err)
		os.Exit(1)
	}
	set, err := snap.BuildSet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build indexes: %v\n", err)
		os.Exit(1)
	}

	var colleges []string
	for _, c := range snap.Corpora {
		colleges = append(colleges, corpus.Colleges(c.Records)...)
	}

	embedder := ollama.NewClient(envOr("OLLAMA_URL", "http://localhost:11434"), snap.Model)

	var translator translate.Translator
	if url := os.Getenv("TRANSLATE_URL"); url != "" {
		translator = translate.NewRemote(url, nil, logger)
	} else {
		translator = translate.NewOffline()
	}

	svc := query.NewService(embedder, query.NewSetSearcher(set), translator, collegenlp.NewExtractor(colleges), nil, logger)

	fmt.Printf("sahayak: %d records, languages %v, model %s\n", set.Len(), set.Languages(), snap.Model)
	fmt.Println(`type a question, or "quit" to exit`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "quit" || question == "exit" {
			break
		}

		resp, err := svc.Query(ctx, query.Request{Question: question, Language: *language, TopK: *topK})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if resp.TotalResults == 0 {
			fmt.Println("no matches")
			continue
		}
		for _, r := range resp.Results {
			fmt.Printf("%d. [%5.1f] %s / %s\n   %s\n", r.Rank, r.Confidence, r.College, r.Category, r.Answer)
		}
	}
}
