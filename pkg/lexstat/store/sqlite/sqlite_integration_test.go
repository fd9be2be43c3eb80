package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
	"github.com/cognicore/lexstat/pkg/lexstat/pair"
	"github.com/cognicore/lexstat/pkg/lexstat/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	run := store.Run{
		ID:         store.NewRunID(),
		CorpusPath: "corpus.tok",
		Window:     2,
		UnigramN:   6,
		CooccurN:   6,
		CreatedAt:  time.Now(),
	}
	unigram := map[string]int64{"the": 2, "cat": 1, "sat": 2, "dog": 1}
	cooccur := map[pair.Pair]int64{
		pair.Make("cat", "sat"): 1,
		pair.Make("cat", "the"): 1,
		pair.Make("dog", "sat"): 1,
		pair.Make("dog", "the"): 1,
		pair.Make("sat", "the"): 2,
	}

	if err := s.SaveRun(ctx, run, unigram, cooccur); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, err := s.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.CorpusPath != run.CorpusPath || got.Window != run.Window ||
		got.UnigramN != run.UnigramN || got.CooccurN != run.CooccurN {
		t.Errorf("Run metadata mismatch: got %+v, want %+v", got, run)
	}

	uni, err := s.LoadUnigram(ctx, run.ID)
	if err != nil {
		t.Fatalf("LoadUnigram: %v", err)
	}
	if !reflect.DeepEqual(uni, unigram) {
		t.Errorf("Unigram round trip mismatch: got %v, want %v", uni, unigram)
	}

	coo, err := s.LoadCooccur(ctx, run.ID)
	if err != nil {
		t.Fatalf("LoadCooccur: %v", err)
	}
	if !reflect.DeepEqual(coo, cooccur) {
		t.Errorf("Cooccur round trip mismatch: got %v, want %v", coo, cooccur)
	}
}

func TestLatestRunOrdering(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	base := time.Now()
	first := store.Run{ID: store.NewRunID(), Window: 1, CreatedAt: base}
	second := store.Run{ID: store.NewRunID(), Window: 2, CreatedAt: base.Add(time.Second)}

	if err := s.SaveRun(ctx, first, map[string]int64{"a": 1}, nil); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := s.SaveRun(ctx, second, map[string]int64{"b": 1}, nil); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	latest, err := s.LatestRun(ctx)
	if err != nil {
		t.Fatalf("LatestRun: %v", err)
	}
	if latest.ID != second.ID {
		t.Errorf("LatestRun = %s, want %s", latest.ID, second.ID)
	}
}

func TestMissingRun(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	if _, err := s.GetRun(ctx, "nope"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("GetRun: expected ErrNotFound, got %v", err)
	}
	if _, err := s.LatestRun(ctx); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("LatestRun: expected ErrNotFound, got %v", err)
	}
	if _, err := s.LoadUnigram(ctx, "nope"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("LoadUnigram: expected ErrNotFound, got %v", err)
	}
	if _, err := s.LoadCooccur(ctx, "nope"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("LoadCooccur: expected ErrNotFound, got %v", err)
	}
}

func TestSaveRunOverwrite(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	run := store.Run{ID: store.NewRunID(), CreatedAt: time.Now()}
	if err := s.SaveRun(ctx, run, map[string]int64{"a": 1}, nil); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := s.SaveRun(ctx, run, map[string]int64{"a": 5}, nil); err != nil {
		t.Fatalf("SaveRun (overwrite): %v", err)
	}

	uni, err := s.LoadUnigram(ctx, run.ID)
	if err != nil {
		t.Fatalf("LoadUnigram: %v", err)
	}
	if uni["a"] != 5 {
		t.Errorf("Overwritten count = %d, want 5", uni["a"])
	}
}
