// Package eval scores a human word-similarity judgment table against PPMI
// and reports a rank correlation between the two.
package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
	"github.com/cognicore/lexstat/pkg/lexstat/pmi"
)

// Default column names in the judgment table header, as published with the
// WordSim-style similarity datasets.
const (
	DefaultWord1Column = "Word 1"
	DefaultWord2Column = "Word 2"
	DefaultScoreColumn = "Human (mean)"
)

// Judgment is one human similarity rating for a word pair.
type Judgment struct {
	W1, W2 string
	Score  float64
}

// TableOptions controls judgment table parsing.
type TableOptions struct {
	// Word1Column, Word2Column and ScoreColumn name the header columns to
	// read. Empty fields fall back to the defaults.
	Word1Column string
	Word2Column string
	ScoreColumn string

	// FoldCase lower-cases the judgment tokens so they match a case-folded
	// corpus. The corpus side is never folded here; if the tables were
	// built from unfolded text, folded judgment tokens silently score 0.
	FoldCase bool
}

func (o TableOptions) withDefaults() TableOptions {
	if o.Word1Column == "" {
		o.Word1Column = DefaultWord1Column
	}
	if o.Word2Column == "" {
		o.Word2Column = DefaultWord2Column
	}
	if o.ScoreColumn == "" {
		o.ScoreColumn = DefaultScoreColumn
	}
	return o
}

// ReadJudgments parses a tab-separated judgment table with a header row.
// Rows missing a named column or carrying a non-numeric score abort the
// load with internalerr.ErrMalformedRow.
func ReadJudgments(r io.Reader, opts TableOptions) ([]Judgment, error) {
	opts = opts.withDefaults()

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("missing header row: %w", internalerr.ErrMalformedRow)
	}

	header := strings.Split(scanner.Text(), "\t")
	w1Col, w2Col, scoreCol := -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case opts.Word1Column:
			w1Col = i
		case opts.Word2Column:
			w2Col = i
		case opts.ScoreColumn:
			scoreCol = i
		}
	}
	if w1Col < 0 || w2Col < 0 || scoreCol < 0 {
		return nil, fmt.Errorf("header %q lacks required columns %q, %q, %q: %w",
			scanner.Text(), opts.Word1Column, opts.Word2Column, opts.ScoreColumn,
			internalerr.ErrMalformedRow)
	}

	var judgments []Judgment
	linenum := 1
	for scanner.Scan() {
		linenum++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) <= w1Col || len(fields) <= w2Col || len(fields) <= scoreCol {
			return nil, fmt.Errorf("judgment line %d: too few fields: %w",
				linenum, internalerr.ErrMalformedRow)
		}
		score, err := strconv.ParseFloat(fields[scoreCol], 64)
		if err != nil {
			return nil, fmt.Errorf("judgment line %d: score %q: %w",
				linenum, fields[scoreCol], internalerr.ErrMalformedRow)
		}
		w1, w2 := fields[w1Col], fields[w2Col]
		if opts.FoldCase {
			w1 = strings.ToLower(w1)
			w2 = strings.ToLower(w2)
		}
		judgments = append(judgments, Judgment{W1: w1, W2: w2, Score: score})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return judgments, nil
}

// ReadJudgmentsFile loads a judgment table from path.
func ReadJudgmentsFile(path string, opts TableOptions) ([]Judgment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJudgments(f, opts)
}

// CorrFunc computes a correlation coefficient over two equal-length
// sequences. It is consumed as a black box; Spearman is the stock choice.
type CorrFunc func(x, y []float64) float64

// Scores holds the two aligned sequences the driver produces, in judgment
// input order.
type Scores struct {
	Human []float64
	PPMI  []float64
}

// Score computes PPMI for every judgment pair. Pairs unseen in the tables
// score 0; a normalization mismatch between the judgment table and the
// corpus therefore shows up as zeros, not errors.
func Score(calc *pmi.Calculator, judgments []Judgment) Scores {
	s := Scores{
		Human: make([]float64, len(judgments)),
		PPMI:  make([]float64, len(judgments)),
	}
	for i, j := range judgments {
		s.Human[i] = j.Score
		s.PPMI[i] = calc.PPMI(j.W1, j.W2)
	}
	return s
}

// Correlate runs the driver end to end: PPMI per judgment, then the
// correlation of human scores with PPMI scores.
func Correlate(calc *pmi.Calculator, judgments []Judgment, corr CorrFunc) float64 {
	s := Score(calc, judgments)
	return corr(s.Human, s.PPMI)
}
