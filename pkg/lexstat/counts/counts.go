package counts

import (
	"github.com/cognicore/lexstat/pkg/lexstat/pair"
	"github.com/cognicore/lexstat/pkg/lexstat/window"
)

// Aggregator accumulates unigram and windowed co-occurrence counts over a
// tokenized corpus. Construct one per run; there is no package-level state.
type Aggregator struct {
	radius  int
	Unigram map[string]int64    // occurrences per token (target positions)
	Cooccur map[pair.Pair]int64 // co-occurrences per canonical pair
}

// NewAggregator creates an empty aggregator with the given window radius.
// Radius values below window.MinRadius are clamped.
func NewAggregator(radius int) *Aggregator {
	return &Aggregator{
		radius:  window.Clamp(radius),
		Unigram: make(map[string]int64),
		Cooccur: make(map[pair.Pair]int64),
	}
}

// Radius returns the window radius the aggregator counts with.
func (a *Aggregator) Radius() int {
	return a.radius
}

// AddSentence updates counts for one sentence. Each position is a target:
// its unigram count is incremented, and every context token within the
// radius window contributes one co-occurrence under the canonical pair key.
//
// A co-occurrence is recorded only when the target is lexicographically <=
// the context token; the mirrored event, where the roles are swapped, is
// counted from the other side of the same window. Because the window
// relation is symmetric within a sentence, each unordered pair of unequal
// tokens is counted exactly once. Equal-valued tokens at distinct positions
// pass the check from both sides and are counted as (t, t) twice, matching
// the target-strictly-greater skip rule.
func (a *Aggregator) AddSentence(sentence []string) {
	for i, target := range sentence {
		a.Unigram[target]++
		for _, context := range window.Context(sentence, i, a.radius) {
			if target > context {
				continue
			}
			a.Cooccur[pair.Make(target, context)]++
		}
	}
}

// Merge folds another aggregator's counts into this one, key by key.
// Merging is commutative and associative: sharding a corpus, aggregating
// the shards separately and merging gives the same tables as a single pass.
func (a *Aggregator) Merge(other *Aggregator) {
	for tok, n := range other.Unigram {
		a.Unigram[tok] += n
	}
	for p, n := range other.Cooccur {
		a.Cooccur[p] += n
	}
}

// UnigramTotal returns the sum of all unigram counts.
func (a *Aggregator) UnigramTotal() int64 {
	var n int64
	for _, c := range a.Unigram {
		n += c
	}
	return n
}

// CooccurTotal returns the sum of all co-occurrence counts.
func (a *Aggregator) CooccurTotal() int64 {
	var n int64
	for _, c := range a.Cooccur {
		n += c
	}
	return n
}

// UniqueTokens returns the number of distinct tokens seen.
func (a *Aggregator) UniqueTokens() int {
	return len(a.Unigram)
}

// UniquePairs returns the number of distinct canonical pairs seen.
func (a *Aggregator) UniquePairs() int {
	return len(a.Cooccur)
}
