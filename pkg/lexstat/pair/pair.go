package pair

// Pair is a canonical unordered token pair (A <= B lexicographically).
// Canonicalization is the sole mechanism preventing symmetric pairs from
// being counted under two different keys.
type Pair struct {
	A, B string
}

// Make canonicalizes two tokens into a Pair. Make(x, y) == Make(y, x) for
// all x, y; equal tokens yield (x, x).
func Make(w1, w2 string) Pair {
	if w1 > w2 {
		w1, w2 = w2, w1
	}
	return Pair{A: w1, B: w2}
}
