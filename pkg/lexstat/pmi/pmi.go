package pmi

import (
	"fmt"
	"math"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
	"github.com/cognicore/lexstat/pkg/lexstat/pair"
)

// Calculator computes empirical probabilities and PMI/PPMI from unigram
// and co-occurrence count tables. The tables and their totals are fixed at
// construction; a Calculator is read-only and safe for concurrent queries.
type Calculator struct {
	unigram  map[string]int64
	cooccur  map[pair.Pair]int64
	unigramN int64
	cooccurN int64
}

// NewCalculator builds a Calculator over the given tables. Returns
// internalerr.ErrEmptyCorpus if either table sums to zero: probabilities
// are undefined over an empty table, and that is a caller error rather
// than a crash waiting in a divide.
func NewCalculator(unigram map[string]int64, cooccur map[pair.Pair]int64) (*Calculator, error) {
	c := &Calculator{unigram: unigram, cooccur: cooccur}
	for _, n := range unigram {
		c.unigramN += n
	}
	for _, n := range cooccur {
		c.cooccurN += n
	}
	if c.unigramN == 0 {
		return nil, fmt.Errorf("unigram table: %w", internalerr.ErrEmptyCorpus)
	}
	if c.cooccurN == 0 {
		return nil, fmt.Errorf("cooccurrence table: %w", internalerr.ErrEmptyCorpus)
	}
	return c, nil
}

// UnigramTotal returns the sum of unigram counts.
func (c *Calculator) UnigramTotal() int64 { return c.unigramN }

// CooccurTotal returns the sum of co-occurrence counts.
func (c *Calculator) CooccurTotal() int64 { return c.cooccurN }

// UnigramP returns the empirical probability of a token. Unseen tokens
// have probability 0; that is a valid query, not an error.
func (c *Calculator) UnigramP(w string) float64 {
	return float64(c.unigram[w]) / float64(c.unigramN)
}

// CooccurP returns the empirical probability of the unordered pair.
// Unseen pairs have probability 0.
func (c *Calculator) CooccurP(w1, w2 string) float64 {
	return float64(c.cooccur[pair.Make(w1, w2)]) / float64(c.cooccurN)
}

// PMI computes the pointwise mutual information of the pair,
// log2(P(w1,w2) / (P(w1) * P(w2))). A pair never observed together
// returns -Inf: a meaningful "no association evidence" sentinel, not an
// error. No smoothing is applied.
func (c *Calculator) PMI(w1, w2 string) float64 {
	numerator := c.CooccurP(w1, w2)
	if numerator == 0 {
		return math.Inf(-1)
	}
	denominator := c.UnigramP(w1) * c.UnigramP(w2)
	return math.Log2(numerator / denominator)
}

// PPMI computes positive PMI: max(PMI, 0). The -Inf sentinel for unseen
// pairs floors to 0 under the max.
func (c *Calculator) PPMI(w1, w2 string) float64 {
	return math.Max(c.PMI(w1, w2), 0.0)
}
