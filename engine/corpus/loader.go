package corpus

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/SahayakAI/sahayak-mvp/engine/domain"
	"github.com/SahayakAI/sahayak-mvp/pkg/fn"
)

// LoadStats summarises one load pass.
type LoadStats struct {
	Colleges    int // directories with a parsable fact sheet
	Records     int
	Quarantined int // entries that failed validation
	Skipped     int // directories without a usable fact sheet
}

// Load reads every college fact sheet under root and returns the ordered
// record sequence. Order is deterministic (directories sorted by name,
// categories sorted within a sheet) because records are addressed by
// position for the lifetime of the process.
//
// Individual missing or malformed fact sheets are skipped with a warning.
// An unreadable root, or a root yielding zero records, wraps
// domain.ErrCorpusLoad: the service must not start over an empty corpus.
func Load(root string, logger *slog.Logger) ([]domain.Record, LoadStats, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var stats LoadStats

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, stats, fmt.Errorf("corpus: read dir %s: %v: %w", root, err, domain.ErrCorpusLoad)
	}

	dirs := fn.FilterMap(entries, func(e os.DirEntry) (string, bool) {
		return e.Name(), e.IsDir()
	})

	// Fact sheets are independent files; parse them concurrently. ParMap
	// preserves directory order, which preserves record order.
	type parsed struct {
		records []domain.Record
		quarantined int
		skipped  bool
	}
	results := fn.ParMap(dirs, 8, func(dir string) parsed {
		path := filepath.Join(root, dir, FactSheetFile)
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("corpus: skipping college without fact sheet", "dir", dir, "error", err)
			return parsed{skipped: true}
		}
		var sheet factSheet
		if err := json.Unmarshal(data, &sheet); err != nil {
			logger.Warn("corpus: skipping malformed fact sheet", "dir", dir, "error", err)
			return parsed{skipped: true}
		}

		recs, quarantined := sheetRecords(dir, sheet, logger)
		return parsed{records: recs, quarantined: quarantined}
	})

	var records []domain.Record
	for _, p := range results {
		if p.skipped {
			stats.Skipped++
			continue
		}
		stats.Colleges++
		stats.Quarantined += p.quarantined
		records = append(records, p.records...)
	}
	stats.Records = len(records)

	if len(records) == 0 {
		return nil, stats, fmt.Errorf("corpus: no records under %s: %w", root, domain.ErrCorpusLoad)
	}

	logger.Info("corpus loaded",
		"colleges", stats.Colleges,
		"records", stats.Records,
		"quarantined", stats.Quarantined,
		"skipped", stats.Skipped,
	)
	return records, stats, nil
}

// sheetRecords flattens one fact sheet into validated, normalized records.
// Categories are walked in sorted order so the sequence is stable.
func sheetRecords(dir string, sheet factSheet, logger *slog.Logger) ([]domain.Record, int) {
	college := sheet.CollegeName
	if college == "" {
		college = dir
	}
	language := sheet.Language
	if language == "" {
		language = domain.LangEnglish
	}

	categories := make([]string, 0, len(sheet.FAQs))
	for cat := range sheet.FAQs {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var records []domain.Record
	quarantined := 0
	for _, cat := range categories {
		for _, entry := range sheet.FAQs[cat] {
			rec := NormalizeRecord(domain.Record{
				College:  college,
				Category: cat,
				Question: entry.Question,
				Answer:   entry.Answer,
				Keywords: entry.Keywords,
				Language: language,
			})
			if err := domain.ValidateRecord(rec); err != nil {
				quarantined++
				logger.Warn("corpus: quarantined entry", "college", college, "category", cat, "error", err)
				continue
			}
			records = append(records, rec)
		}
	}
	return records, quarantined
}

// Colleges returns the distinct college names in corpus order.
func Colleges(records []domain.Record) []string {
	return fn.Unique(fn.Map(records, func(r domain.Record) string { return r.College }))
}

// ByLanguage partitions records by language, preserving order within each.
func ByLanguage(records []domain.Record) map[string][]domain.Record {
	out := make(map[string][]domain.Record)
	for _, r := range records {
		out[r.Language] = append(out[r.Language], r)
	}
	return out
}
