package eval

import (
	"errors"
	"strings"
	"testing"

	"github.com/cognicore/lexstat/pkg/lexstat/counts"
	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
	"github.com/cognicore/lexstat/pkg/lexstat/pmi"
)

const judgmentTSV = "Word 1\tWord 2\tHuman (mean)\n" +
	"cat\tsat\t8.5\n" +
	"dog\tthe\t3.1\n" +
	"cat\tdog\t6.2\n"

func testCalculator(t *testing.T) *pmi.Calculator {
	t.Helper()
	agg := counts.NewAggregator(2)
	agg.AddSentence([]string{"the", "cat", "sat"})
	agg.AddSentence([]string{"the", "dog", "sat"})
	calc, err := pmi.NewCalculator(agg.Unigram, agg.Cooccur)
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return calc
}

func TestReadJudgments(t *testing.T) {
	got, err := ReadJudgments(strings.NewReader(judgmentTSV), TableOptions{})
	if err != nil {
		t.Fatalf("ReadJudgments: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 judgments, got %d", len(got))
	}
	if got[0].W1 != "cat" || got[0].W2 != "sat" || got[0].Score != 8.5 {
		t.Errorf("First judgment mismatch: %+v", got[0])
	}
	if got[2].W1 != "cat" || got[2].W2 != "dog" {
		t.Errorf("Input order not preserved: %+v", got[2])
	}
}

func TestReadJudgmentsFoldCase(t *testing.T) {
	in := "Word 1\tWord 2\tHuman (mean)\nCat\tSAT\t8.5\n"
	got, err := ReadJudgments(strings.NewReader(in), TableOptions{FoldCase: true})
	if err != nil {
		t.Fatalf("ReadJudgments: %v", err)
	}
	if got[0].W1 != "cat" || got[0].W2 != "sat" {
		t.Errorf("Expected folded tokens, got %+v", got[0])
	}
}

func TestReadJudgmentsCustomColumns(t *testing.T) {
	in := "left\tright\tscore\nfoo\tbar\t1.5\n"
	got, err := ReadJudgments(strings.NewReader(in), TableOptions{
		Word1Column: "left",
		Word2Column: "right",
		ScoreColumn: "score",
	})
	if err != nil {
		t.Fatalf("ReadJudgments: %v", err)
	}
	if got[0].W1 != "foo" || got[0].Score != 1.5 {
		t.Errorf("Unexpected judgment: %+v", got[0])
	}
}

func TestReadJudgmentsMalformed(t *testing.T) {
	// No header, missing named columns, too few fields, non-numeric score.
	cases := []string{
		"",
		"Wrong\tColumns\there\nfoo\tbar\t1\n",
		"Word 1\tWord 2\tHuman (mean)\ncat\n",
		"Word 1\tWord 2\tHuman (mean)\na\tb\tnine\n",
	}
	for _, in := range cases {
		_, err := ReadJudgments(strings.NewReader(in), TableOptions{})
		if !errors.Is(err, internalerr.ErrMalformedRow) {
			t.Errorf("Input %q: expected ErrMalformedRow, got %v", in, err)
		}
	}
}

func TestScoreAlignment(t *testing.T) {
	calc := testCalculator(t)
	judgments, err := ReadJudgments(strings.NewReader(judgmentTSV), TableOptions{})
	if err != nil {
		t.Fatalf("ReadJudgments: %v", err)
	}

	s := Score(calc, judgments)
	if len(s.Human) != len(judgments) || len(s.PPMI) != len(judgments) {
		t.Fatalf("Sequences must match judgment count %d, got %d/%d",
			len(judgments), len(s.Human), len(s.PPMI))
	}
	for i, j := range judgments {
		if s.Human[i] != j.Score {
			t.Errorf("Human[%d] = %f, want %f", i, s.Human[i], j.Score)
		}
		if s.PPMI[i] != calc.PPMI(j.W1, j.W2) {
			t.Errorf("PPMI[%d] out of order", i)
		}
	}

	// "cat" and "dog" never co-occur: PPMI 0, not an error.
	if s.PPMI[2] != 0 {
		t.Errorf("Unseen pair should score 0, got %f", s.PPMI[2])
	}
}

func TestCorrelate(t *testing.T) {
	calc := testCalculator(t)
	judgments := []Judgment{
		{W1: "cat", W2: "sat", Score: 9},
		{W1: "sat", W2: "the", Score: 5},
		{W1: "cat", W2: "dog", Score: 1},
	}

	var gotX, gotY []float64
	coeff := Correlate(calc, judgments, func(x, y []float64) float64 {
		gotX, gotY = x, y
		return 0.42
	})
	if coeff != 0.42 {
		t.Errorf("Correlate should return the correlation function's value, got %f", coeff)
	}
	if len(gotX) != 3 || len(gotY) != 3 {
		t.Errorf("Correlation function received %d/%d values, want 3/3", len(gotX), len(gotY))
	}
}
