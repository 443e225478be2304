package index

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SahayakAI/sahayak-mvp/engine/domain"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		Version: SnapshotVersion,
		Model:   "test-model",
		Dim:     3,
		BuiltAt: time.Now().UTC(),
		Corpora: []LanguageCorpus{
			{
				Language: "en",
				Records: []domain.Record{
					rec("A", "fees"),
					rec("B", "hostel"),
				},
				Matrix: [][]float32{
					{1, 0, 0},
					{0, 1, 0},
				},
			},
		},
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.gob")
	s := testSnapshot()
	if err := s.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	loaded, err := ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	if loaded.Model != "test-model" || loaded.Dim != 3 {
		t.Errorf("header = %+v", loaded)
	}
	if len(loaded.Corpora) != 1 || len(loaded.Corpora[0].Records) != 2 {
		t.Fatalf("corpora = %+v", loaded.Corpora)
	}
	if loaded.Corpora[0].Records[1].College != "B" {
		t.Errorf("record = %+v", loaded.Corpora[0].Records[1])
	}
	if loaded.Corpora[0].Matrix[1][1] != 1 {
		t.Errorf("matrix = %v", loaded.Corpora[0].Matrix)
	}
}

func TestSnapshot_RoundTripSearchIdentical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.gob")
	s := testSnapshot()
	if err := s.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	loaded, err := ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}

	before, err := s.BuildSet()
	if err != nil {
		t.Fatalf("BuildSet before: %v", err)
	}
	after, err := loaded.BuildSet()
	if err != nil {
		t.Fatalf("BuildSet after: %v", err)
	}

	probes := [][]float32{{1, 0, 0}, {0.5, 0.5, 0}, {0.1, 0.9, 0.2}}
	for _, q := range probes {
		b, _ := before.Select("en")
		a, _ := after.Select("en")
		hb := b.Search(q, 2)
		ha := a.Search(q, 2)
		if len(hb) != len(ha) {
			t.Fatalf("hit count differs for %v", q)
		}
		for i := range hb {
			if hb[i] != ha[i] {
				t.Errorf("probe %v hit %d: %v vs %v", q, i, hb[i], ha[i])
			}
		}
	}
}

func TestReadSnapshot_Missing(t *testing.T) {
	_, err := ReadSnapshot(filepath.Join(t.TempDir(), "nope.gob"))
	if !errors.Is(err, domain.ErrCorpusLoad) {
		t.Fatalf("expected ErrCorpusLoad, got %v", err)
	}
}

func TestReadSnapshot_Garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gob")
	if err := os.WriteFile(path, []byte("not a snapshot"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadSnapshot(path); !errors.Is(err, domain.ErrCorpusLoad) {
		t.Fatalf("expected ErrCorpusLoad, got %v", err)
	}
}

func TestReadSnapshot_WrongVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.gob")
	s := testSnapshot()
	s.Version = SnapshotVersion + 1
	if err := s.Write(path); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadSnapshot(path); !errors.Is(err, domain.ErrIndexBuild) {
		t.Fatalf("expected ErrIndexBuild, got %v", err)
	}
}

func TestReadSnapshot_ShapeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.gob")
	s := testSnapshot()
	s.Corpora[0].Matrix = s.Corpora[0].Matrix[:1] // drop a row
	if err := s.Write(path); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadSnapshot(path); !errors.Is(err, domain.ErrIndexBuild) {
		t.Fatalf("expected ErrIndexBuild, got %v", err)
	}
}
