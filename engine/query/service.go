// Package query orchestrates one question end to end: detect language,
// translate to English, embed, search the selected index, translate answers
// back, and rank with a confidence score. Translation failures degrade the
// answer; embedding failures fail the query.
package query

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SahayakAI/sahayak-mvp/engine/domain"
	"github.com/SahayakAI/sahayak-mvp/engine/translate"
	"github.com/SahayakAI/sahayak-mvp/pkg/collegenlp"
	"github.com/SahayakAI/sahayak-mvp/pkg/fn"
	"github.com/SahayakAI/sahayak-mvp/pkg/metrics"
)

// Embedder turns text into a vector. The embedding model is served
// externally; the service only requires determinism for identical input.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// overfetch widens the candidate pool when a college mention narrows
// results, so filtering still leaves top_k survivors.
const overfetch = 4

// Service answers fact-sheet questions over a search backend.
type Service struct {
	embed      Embedder
	search     Searcher
	translator translate.Translator
	colleges   *collegenlp.Extractor
	logger     *slog.Logger

	queries   *metrics.Counter
	failures  *metrics.Counter
	emptyHits *metrics.Counter
	latency   *metrics.Histogram
}

// NewService wires the query pipeline. extractor may be nil to disable
// college narrowing; reg may be nil to disable metrics.
func NewService(embed Embedder, search Searcher, translator translate.Translator, extractor *collegenlp.Extractor, reg *metrics.Registry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	return &Service{
		embed:      embed,
		search:     search,
		translator: translator,
		colleges:   extractor,
		logger:     logger,
		queries:    reg.Counter("query_total", "Queries processed."),
		failures:   reg.Counter("query_failures_total", "Queries failed before producing results."),
		emptyHits:  reg.Counter("query_empty_total", "Queries that produced zero results."),
		latency:    reg.Histogram("query_duration_seconds", "End-to-end query latency.", nil),
	}
}

// Query runs the full pipeline for one request.
func (s *Service) Query(ctx context.Context, req Request) (Response, error) {
	start := time.Now()
	defer s.latency.Since(start)
	s.queries.Inc()

	topK := req.TopK
	if topK == 0 {
		topK = DefaultTopK
	}
	if err := domain.ValidateQuery(req.Question, req.Language, req.TopK); err != nil {
		s.failures.Inc()
		return Response{}, err
	}

	lang := req.Language
	if lang == "" {
		detected, err := s.translator.Detect(req.Question)
		if err != nil {
			s.logger.Warn("query: detection failed, assuming english", "error", err)
			detected = domain.LangEnglish
		}
		lang = detected
	}

	// The embedding model speaks English; non-English questions go through
	// translation first. A failed translation degrades to embedding the
	// original text rather than failing the query.
	embedText := req.Question
	if lang != domain.LangEnglish {
		translated, err := s.translator.Translate(ctx, req.Question, lang, domain.LangEnglish)
		if err != nil {
			s.logger.Warn("query: question translation degraded", "language", lang, "error", err)
		} else {
			embedText = translated
		}
	}

	vector, err := s.embed.Embed(ctx, embedText)
	if err != nil {
		s.failures.Inc()
		return Response{}, fmt.Errorf("query: embed question: %v: %w", err, domain.ErrEmbedding)
	}

	var college string
	if s.colleges != nil {
		if m, ok := s.colleges.Extract(embedText); ok {
			college = m.College
		}
	}

	fetchK := topK
	if college != "" {
		fetchK = topK * overfetch
	}
	matches, served, err := s.search.Search(ctx, lang, vector, fetchK)
	if err != nil {
		s.failures.Inc()
		return Response{}, fmt.Errorf("query: search: %w", err)
	}

	matches = fn.Filter(matches, func(m Match) bool { return float64(m.Score) >= MinSimilarity })
	if college != "" {
		narrowed := fn.Filter(matches, func(m Match) bool { return m.Record.College == college })
		// Only narrow when the mentioned college actually has hits;
		// otherwise the broad ranking is the honest answer.
		if len(narrowed) > 0 {
			matches = narrowed
		}
	}
	if len(matches) > topK {
		matches = matches[:topK]
	}

	results := s.renderResults(ctx, matches, lang, served)
	if len(results) == 0 {
		s.emptyHits.Inc()
	}

	return Response{
		Query:        req.Question,
		Results:      results,
		TotalResults: len(results),
		Language:     lang,
		Timestamp:    time.Now().UTC(),
	}, nil
}

// renderResults ranks matches and translates answers back into the query
// language when the serving corpus was a different one. A failed
// back-translation ships the untranslated answer with Translated=false.
func (s *Service) renderResults(ctx context.Context, matches []Match, lang, served string) []Result {
	results := make([]Result, 0, len(matches))
	for i, m := range matches {
		r := Result{
			Rank:       i + 1,
			College:    m.Record.College,
			Category:   m.Record.Category,
			Question:   m.Record.Question,
			Answer:     m.Record.Answer,
			Confidence: confidence(m.Score),
			Language:   served,
		}
		if lang != served {
			translated, err := s.translator.Translate(ctx, m.Record.Answer, served, lang)
			if err != nil {
				s.logger.Warn("query: answer translation degraded", "target", lang, "error", err)
			} else {
				r.Answer = translated
				r.Language = lang
				r.Translated = true
			}
		}
		results = append(results, r)
	}
	return results
}

// confidence projects a cosine similarity onto a 0-100 scale, clamped.
func confidence(score float32) float64 {
	c := float64(score) * 100
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
