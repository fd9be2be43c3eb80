package window

// Window configuration constants
const (
	// DefaultRadius is the default co-occurrence window radius: tokens
	// within this many positions of the target count as context.
	DefaultRadius = 5

	// MinRadius is the minimum valid radius. Values below this are
	// clamped so window extraction always yields some context.
	MinRadius = 1
)

// Clamp returns radius, raised to MinRadius if it is below it.
func Clamp(radius int) int {
	if radius < MinRadius {
		return MinRadius
	}
	return radius
}

// Context returns the tokens within radius positions of center, in
// sentence order, excluding the center position itself. The window is
// clipped at the sentence boundaries; windows never span sentences.
// Sentences shorter than the radius simply yield a smaller window.
func Context(sentence []string, center, radius int) []string {
	lo := center - radius
	if lo < 0 {
		lo = 0
	}
	hi := center + radius
	if hi > len(sentence)-1 {
		hi = len(sentence) - 1
	}

	out := make([]string, 0, hi-lo)
	for i := lo; i <= hi; i++ {
		if i == center {
			continue
		}
		out = append(out, sentence[i])
	}
	return out
}
