package index

import (
	"errors"
	"math"
	"testing"

	"github.com/SahayakAI/sahayak-mvp/engine/domain"
)

func rec(college, question string) domain.Record {
	return domain.Record{
		College:  college,
		Category: "General",
		Question: question,
		Answer:   "answer for " + question,
		Language: "en",
	}
}

func testIndex(t *testing.T) *Index {
	t.Helper()
	records := []domain.Record{
		rec("A", "fees"),
		rec("B", "hostel"),
		rec("C", "placements"),
	}
	matrix := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 2}, // un-normalized on purpose
	}
	ix, err := Build("en", records, matrix)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return ix
}

func TestBuild_EmptyCorpus(t *testing.T) {
	_, err := Build("en", nil, nil)
	if !errors.Is(err, domain.ErrIndexBuild) {
		t.Fatalf("expected ErrIndexBuild, got %v", err)
	}
}

func TestBuild_RowCountMismatch(t *testing.T) {
	_, err := Build("en", []domain.Record{rec("A", "q")}, [][]float32{{1}, {2}})
	if !errors.Is(err, domain.ErrIndexBuild) {
		t.Fatalf("expected ErrIndexBuild, got %v", err)
	}
}

func TestBuild_DimMismatch(t *testing.T) {
	records := []domain.Record{rec("A", "q"), rec("B", "q2")}
	_, err := Build("en", records, [][]float32{{1, 0}, {1}})
	if !errors.Is(err, domain.ErrIndexBuild) {
		t.Fatalf("expected ErrIndexBuild, got %v", err)
	}
}

func TestSearch_RanksByCosine(t *testing.T) {
	ix := testIndex(t)
	hits := ix.Search([]float32{0, 0.1, 1}, 3)
	if len(hits) != 3 {
		t.Fatalf("hits = %d", len(hits))
	}
	if hits[0].Row != 2 {
		t.Errorf("top hit row = %d, want 2", hits[0].Row)
	}
	// Normalization makes the magnitude-2 vector score like a unit vector.
	if hits[0].Score <= 0.9 {
		t.Errorf("top score = %v", hits[0].Score)
	}
	for i := 1; i < len(hits); i++ {
		if hits[i].Score > hits[i-1].Score {
			t.Errorf("scores not non-increasing at %d", i)
		}
	}
	for _, h := range hits {
		if h.Score < -1.0001 || h.Score > 1.0001 {
			t.Errorf("score %v outside [-1,1]", h.Score)
		}
	}
}

func TestSearch_KLargerThanCorpus(t *testing.T) {
	ix := testIndex(t)
	hits := ix.Search([]float32{1, 0, 0}, 10)
	if len(hits) != 3 {
		t.Errorf("hits = %d, want corpus size 3", len(hits))
	}
}

func TestSearch_TiesKeepRowOrder(t *testing.T) {
	records := []domain.Record{rec("A", "q1"), rec("B", "q2"), rec("C", "q3")}
	matrix := [][]float32{
		{1, 0},
		{1, 0}, // identical to row 0
		{0, 1},
	}
	ix, err := Build("en", records, matrix)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	hits := ix.Search([]float32{1, 0}, 3)
	if hits[0].Row != 0 || hits[1].Row != 1 {
		t.Errorf("tie order = %d,%d, want 0,1", hits[0].Row, hits[1].Row)
	}
}

func TestSearch_Deterministic(t *testing.T) {
	ix := testIndex(t)
	q := []float32{0.3, 0.5, 0.2}
	first := ix.Search(q, 3)
	second := ix.Search(q, 3)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("search not deterministic at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestSearch_BadInputs(t *testing.T) {
	ix := testIndex(t)
	if hits := ix.Search([]float32{1, 0, 0}, 0); hits != nil {
		t.Error("k=0 should return nil")
	}
	if hits := ix.Search([]float32{1, 0}, 3); hits != nil {
		t.Error("dimension mismatch should return nil")
	}
}

func TestNormalize_ZeroVector(t *testing.T) {
	out := normalize([]float32{0, 0, 0})
	for _, v := range out {
		if v != 0 || math.IsNaN(float64(v)) {
			t.Fatalf("zero vector normalized to %v", out)
		}
	}
}

func TestSet_SelectFallsBackToEnglish(t *testing.T) {
	s := NewSet()
	en := testIndex(t)
	s.Add(en)

	ix, ok := s.Select("hi")
	if !ok || ix.Language() != "en" {
		t.Fatalf("expected English fallback, got %v %v", ix, ok)
	}

	hiRecords := []domain.Record{rec("A", "शुल्क")}
	hi, err := Build("hi", hiRecords, [][]float32{{1, 0, 0}})
	if err != nil {
		t.Fatalf("Build hi: %v", err)
	}
	s.Add(hi)
	ix, ok = s.Select("hi")
	if !ok || ix.Language() != "hi" {
		t.Fatal("expected dedicated hi index once added")
	}

	if langs := s.Languages(); len(langs) != 2 || langs[0] != "en" || langs[1] != "hi" {
		t.Errorf("Languages = %v", langs)
	}
	if s.Len() != 4 {
		t.Errorf("Len = %d", s.Len())
	}
}

func TestSet_SelectEmpty(t *testing.T) {
	s := NewSet()
	if _, ok := s.Select("en"); ok {
		t.Error("expected no usable index")
	}
}
