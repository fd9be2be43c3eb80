// Command ppmi-eval loads persisted unigram and co-occurrence tables,
// computes PPMI for each pair in a human similarity judgment table and
// prints the Spearman correlation between the two score sequences.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/cognicore/lexstat/pkg/lexstat"
	"github.com/cognicore/lexstat/pkg/lexstat/config"
	"github.com/cognicore/lexstat/pkg/lexstat/eval"
	"github.com/cognicore/lexstat/pkg/lexstat/pmi"
	"github.com/cognicore/lexstat/pkg/lexstat/store"
	"github.com/cognicore/lexstat/pkg/lexstat/store/sqlite"
)

func main() {
	var (
		unigramPath = flag.String("unigram", "", "Unigram TSV (required unless --db)")
		cooccurPath = flag.String("cooccur", "", "Co-occurrence TSV (required unless --db)")
		tablePath   = flag.String("table", "", "Human judgment TSV (required)")
		dbPath      = flag.String("db", "", "Load tables from this SQLite database instead of TSV")
		runID       = flag.String("run", "", "Run ID in the database (default: latest)")
		fold        = flag.Bool("fold", true, "Case-fold judgment tokens")
		configPath  = flag.String("config", "", "Optional YAML config")
	)
	flag.Parse()

	if *tablePath == "" {
		log.Fatal("--table required")
	}
	if *dbPath == "" && (*unigramPath == "" || *cooccurPath == "") {
		log.Fatal("--unigram and --cooccur required without --db")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
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

	engine := lexstat.New(lexstat.Options{
		Store: st,
		Judgment: eval.TableOptions{
			Word1Column: cfg.Word1Column,
			Word2Column: cfg.Word2Column,
			ScoreColumn: cfg.ScoreColumn,
			FoldCase:    *fold,
		},
	})

	var calc *pmi.Calculator
	if st != nil {
		calc, err = engine.LoadCalculatorRun(ctx, *runID)
		if err != nil {
			log.Fatalf("load tables from %s: %v", *dbPath, err)
		}
	} else {
		log.Printf("Reading unigram counts from %s", *unigramPath)
		log.Printf("Reading co-occurrence counts from %s", *cooccurPath)
		calc, err = engine.LoadCalculatorFiles(*unigramPath, *cooccurPath)
		if err != nil {
			log.Fatalf("load tables: %v", err)
		}
	}

	log.Print("Computing PPMI")
	coeff, err := engine.Evaluate(calc, *tablePath)
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}
	fmt.Printf("PPMI:\t%.4f\n", coeff)
}
