package index

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SahayakAI/sahayak-mvp/engine/domain"
)

// SnapshotVersion is bumped whenever the on-disk layout changes. A snapshot
// written by a different version is rejected at load time, never guessed at.
const SnapshotVersion = 1

// Snapshot is the persisted index artifact: the corpus records and their raw
// (un-normalized) embedding matrices, one section per language. It
// round-trips losslessly; normalization happens again at build time.
type Snapshot struct {
	Version int
	Model   string // embedding model that produced the matrices
	Dim     int
	BuiltAt time.Time
	Corpora []LanguageCorpus
}

// LanguageCorpus is one language's records and embeddings, row-aligned.
type LanguageCorpus struct {
	Language string
	Records  []domain.Record
	Matrix   [][]float32
}

// Write atomically persists the snapshot: write to a temp file in the same
// directory, then rename over the destination.
func (s *Snapshot) Write(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "snapshot-*.gob")
	if err != nil {
		return fmt.Errorf("snapshot: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(s); err != nil {
		tmp.Close()
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("snapshot: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("snapshot: rename into place: %w", err)
	}
	return nil
}

// ReadSnapshot loads and validates a snapshot. Missing or undecodable files
// wrap domain.ErrCorpusLoad; version or shape mismatches wrap
// domain.ErrIndexBuild. Either way the caller must not serve from it.
func ReadSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %s: %v: %w", path, err, domain.ErrCorpusLoad)
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf("snapshot: decode %s: %v: %w", path, err, domain.ErrCorpusLoad)
	}

	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("snapshot: version %d, want %d: %w", s.Version, SnapshotVersion, domain.ErrIndexBuild)
	}
	for _, c := range s.Corpora {
		if len(c.Records) != len(c.Matrix) {
			return nil, fmt.Errorf("snapshot: %s: %d records vs %d rows: %w",
				c.Language, len(c.Records), len(c.Matrix), domain.ErrIndexBuild)
		}
		for i, row := range c.Matrix {
			if len(row) != s.Dim {
				return nil, fmt.Errorf("snapshot: %s row %d: dim %d, want %d: %w",
					c.Language, i, len(row), s.Dim, domain.ErrIndexBuild)
			}
		}
	}
	return &s, nil
}

// BuildSet builds the per-language index set from the snapshot.
func (s *Snapshot) BuildSet() (*Set, error) {
	set := NewSet()
	for _, c := range s.Corpora {
		ix, err := Build(c.Language, c.Records, c.Matrix)
		if err != nil {
			return nil, err
		}
		set.Add(ix)
	}
	return set, nil
}
