// Package lexstat computes distributional word statistics from tokenized
// corpora: unigram frequencies, windowed co-occurrence frequencies, and
// PMI/PPMI association scores validated against human similarity judgments.
package lexstat

import (
	"context"
	"fmt"
	"time"

	"github.com/cognicore/lexstat/internal/corpus"
	"github.com/cognicore/lexstat/pkg/lexstat/counts"
	"github.com/cognicore/lexstat/pkg/lexstat/eval"
	"github.com/cognicore/lexstat/pkg/lexstat/pmi"
	"github.com/cognicore/lexstat/pkg/lexstat/store"
	"github.com/cognicore/lexstat/pkg/lexstat/tables"
	"github.com/cognicore/lexstat/pkg/lexstat/window"
)

// Options configures an Engine.
type Options struct {
	// Window is the co-occurrence radius. Defaults to window.DefaultRadius.
	Window int

	// Workers > 1 enables the sharded corpus pass (whole corpus held in
	// memory); otherwise sentences are streamed through one aggregator.
	Workers int

	// Store optionally persists aggregation runs.
	Store store.Store

	// Corr is the rank correlation used by Evaluate. Defaults to
	// eval.Spearman.
	Corr eval.CorrFunc

	// Judgment controls judgment table parsing for Evaluate.
	Judgment eval.TableOptions

	// Progress receives line-count milestones during the corpus pass.
	Progress func(lines int64)
}

// Engine ties aggregation, persistence and evaluation together.
type Engine struct {
	window   int
	workers  int
	store    store.Store
	corr     eval.CorrFunc
	judgment eval.TableOptions
	progress corpus.ProgressFunc
}

// New creates an Engine with the given options.
func New(opts Options) *Engine {
	if opts.Window == 0 {
		opts.Window = window.DefaultRadius
	}
	corr := opts.Corr
	if corr == nil {
		corr = eval.Spearman
	}
	return &Engine{
		window:   window.Clamp(opts.Window),
		workers:  opts.Workers,
		store:    opts.Store,
		corr:     corr,
		judgment: opts.Judgment,
		progress: opts.Progress,
	}
}

// BuildTables runs the corpus pass and returns the populated aggregator.
func (e *Engine) BuildTables(ctx context.Context, corpusPath string) (*counts.Aggregator, error) {
	if e.workers > 1 {
		sentences, err := corpus.ReadAllFile(corpusPath)
		if err != nil {
			return nil, err
		}
		return counts.AggregateParallel(ctx, sentences, e.window, e.workers)
	}

	agg := counts.NewAggregator(e.window)
	if err := corpus.ScanFile(corpusPath, e.progress, agg.AddSentence); err != nil {
		return nil, err
	}
	return agg, nil
}

// WriteTables emits the aggregator's tables as TSV files.
func (e *Engine) WriteTables(agg *counts.Aggregator, unigramPath, cooccurPath string) error {
	if err := tables.WriteUnigramFile(unigramPath, agg.Unigram); err != nil {
		return fmt.Errorf("write unigrams: %w", err)
	}
	if err := tables.WriteCooccurFile(cooccurPath, agg.Cooccur); err != nil {
		return fmt.Errorf("write co-occurrences: %w", err)
	}
	return nil
}

// PersistRun saves the aggregation result to the configured store and
// returns the run record.
func (e *Engine) PersistRun(ctx context.Context, agg *counts.Aggregator, corpusPath string) (store.Run, error) {
	if e.store == nil {
		return store.Run{}, fmt.Errorf("no store configured")
	}
	run := store.Run{
		ID:         store.NewRunID(),
		CorpusPath: corpusPath,
		Window:     agg.Radius(),
		UnigramN:   agg.UnigramTotal(),
		CooccurN:   agg.CooccurTotal(),
		CreatedAt:  time.Now(),
	}
	if err := e.store.SaveRun(ctx, run, agg.Unigram, agg.Cooccur); err != nil {
		return store.Run{}, err
	}
	return run, nil
}

// LoadCalculatorFiles builds a PMI calculator from persisted TSV tables.
func (e *Engine) LoadCalculatorFiles(unigramPath, cooccurPath string) (*pmi.Calculator, error) {
	unigram, err := tables.ReadUnigramFile(unigramPath)
	if err != nil {
		return nil, fmt.Errorf("load unigrams: %w", err)
	}
	cooccur, err := tables.ReadCooccurFile(cooccurPath)
	if err != nil {
		return nil, fmt.Errorf("load co-occurrences: %w", err)
	}
	return pmi.NewCalculator(unigram, cooccur)
}

// LoadCalculatorRun builds a PMI calculator from a stored run. An empty
// runID selects the latest run.
func (e *Engine) LoadCalculatorRun(ctx context.Context, runID string) (*pmi.Calculator, error) {
	if e.store == nil {
		return nil, fmt.Errorf("no store configured")
	}
	if runID == "" {
		run, err := e.store.LatestRun(ctx)
		if err != nil {
			return nil, err
		}
		runID = run.ID
	}
	unigram, err := e.store.LoadUnigram(ctx, runID)
	if err != nil {
		return nil, err
	}
	cooccur, err := e.store.LoadCooccur(ctx, runID)
	if err != nil {
		return nil, err
	}
	return pmi.NewCalculator(unigram, cooccur)
}

// Evaluate reads a judgment table, scores each pair with PPMI and returns
// the correlation coefficient between human and PPMI scores.
func (e *Engine) Evaluate(calc *pmi.Calculator, judgmentPath string) (float64, error) {
	judgments, err := eval.ReadJudgmentsFile(judgmentPath, e.judgment)
	if err != nil {
		return 0, fmt.Errorf("load judgments: %w", err)
	}
	return eval.Correlate(calc, judgments, e.corr), nil
}
