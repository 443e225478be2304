package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/SahayakAI/sahayak-mvp/engine/domain"
	"github.com/SahayakAI/sahayak-mvp/pkg/resilience"
)

// Remote translates through a LibreTranslate-compatible HTTP service.
// Detection stays local (script blocks are unambiguous and the service adds
// a round trip for nothing); only Translate goes over the wire. Calls are
// paced by a rate limiter and guarded by a circuit breaker; when the
// breaker is open, or a call fails, Remote falls back to the offline
// adapter so the pipeline keeps degrading instead of erroring.
type Remote struct {
	baseURL  string
	client   *http.Client
	cache    *Cache
	limiter  *rate.Limiter
	breaker  *resilience.Breaker
	fallback *Offline
	logger   *slog.Logger
}

// NewRemote builds the remote adapter. cache may be shared across adapters;
// a nil cache gets a private one.
func NewRemote(baseURL string, cache *Cache, logger *slog.Logger) *Remote {
	if cache == nil {
		cache = NewCache()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Remote{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: 15 * time.Second},
		cache:    cache,
		limiter:  rate.NewLimiter(rate.Every(100*time.Millisecond), 10),
		breaker:  resilience.NewBreaker(resilience.DefaultBreakerOpts),
		fallback: NewOffline(),
		logger:   logger,
	}
}

// Detect delegates to the offline script detector.
func (r *Remote) Detect(text string) (string, error) {
	return r.fallback.Detect(text)
}

// Translate returns the cached translation when present, otherwise calls
// the remote service through the breaker. Remote failure falls back to the
// offline dictionary; only a fallback failure surfaces, wrapping
// domain.ErrTranslationUnavailable.
func (r *Remote) Translate(ctx context.Context, text, source, target string) (string, error) {
	if source == target {
		return text, nil
	}
	if cached, ok := r.cache.Get(text, source, target); ok {
		return cached, nil
	}

	var translated string
	err := r.breaker.Call(ctx, func(ctx context.Context) error {
		if err := r.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("translate: rate wait: %w", err)
		}
		out, err := r.post(ctx, text, source, target)
		if err != nil {
			return err
		}
		translated = out
		return nil
	})
	if err != nil {
		if errors.Is(err, resilience.ErrCircuitOpen) {
			r.logger.Warn("translate: circuit open, using offline fallback", "source", source, "target", target)
		} else {
			r.logger.Warn("translate: remote call failed, using offline fallback", "error", err)
		}
		return r.fallback.Translate(ctx, text, source, target)
	}

	r.cache.Put(text, source, target, translated)
	return translated, nil
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

func (r *Remote) post(ctx context.Context, text, source, target string) (string, error) {
	body, err := json.Marshal(translateRequest{Q: text, Source: source, Target: target, Format: "text"})
	if err != nil {
		return "", fmt.Errorf("translate: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("translate: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate: call %s: %v: %w", r.baseURL, err, domain.ErrTranslationUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("translate: status %d: %s: %w", resp.StatusCode, raw, domain.ErrTranslationUnavailable)
	}

	var out translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("translate: decode response: %w", err)
	}
	if out.TranslatedText == "" {
		return "", fmt.Errorf("translate: empty translation: %w", domain.ErrTranslationUnavailable)
	}
	return out.TranslatedText, nil
}
