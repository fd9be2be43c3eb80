// Command cooccur computes unigram and co-occurrence frequency tables
// from a tokenized corpus (one sentence per line, whitespace-delimited)
// and writes them as TSV files, optionally persisting the run to SQLite.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/cognicore/lexstat/pkg/lexstat"
	"github.com/cognicore/lexstat/pkg/lexstat/config"
	"github.com/cognicore/lexstat/pkg/lexstat/store"
	"github.com/cognicore/lexstat/pkg/lexstat/store/sqlite"
)

func main() {
	var (
		input      = flag.String("input", "", "Input tokenized text (required)")
		unigramOut = flag.String("unigram", "", "Output unigram TSV (required)")
		cooccurOut = flag.String("cooccur", "", "Output co-occurrence TSV (required)")
		windowSize = flag.Int("window", 0, "Co-occurrence window radius (default from config, 5)")
		workers    = flag.Int("workers", 0, "Parallel aggregation workers (0: single pass)")
		configPath = flag.String("config", "", "Optional YAML config")
		dbPath     = flag.String("db", "", "Optional SQLite database to record the run")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}
	if *unigramOut == "" {
		log.Fatal("--unigram required")
	}
	if *cooccurOut == "" {
		log.Fatal("--cooccur required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *windowSize > 0 {
		cfg.Window = *windowSize
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	ctx := context.Background()

	var st store.Store
	if *dbPath != "" {
		st, err = sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer st.Close()
	}

	if err := run(ctx, cfg, st, *input, *unigramOut, *cooccurOut); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.Config, st store.Store, input, unigramOut, cooccurOut string) error {
	engine := lexstat.New(lexstat.Options{
		Window:  cfg.Window,
		Workers: cfg.Workers,
		Store:   st,
		Progress: func(lines int64) {
			log.Printf("%dm lines processed", lines/1_000_000)
		},
	})

	agg, err := engine.BuildTables(ctx, input)
	if err != nil {
		return fmt.Errorf("aggregate %s: %w", input, err)
	}
	log.Printf("%d tokens (%d distinct), %d co-occurrences (%d distinct pairs)",
		agg.UnigramTotal(), agg.UniqueTokens(), agg.CooccurTotal(), agg.UniquePairs())

	log.Print("Writing tables...")
	if err := engine.WriteTables(agg, unigramOut, cooccurOut); err != nil {
		return err
	}

	if st != nil {
		rec, err := engine.PersistRun(ctx, agg, input)
		if err != nil {
			return fmt.Errorf("persist run: %w", err)
		}
		log.Printf("Run %s recorded", rec.ID)
	}
	return nil
}
