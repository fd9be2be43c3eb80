package window

import (
	"reflect"
	"testing"
)

func TestContextMiddle(t *testing.T) {
	sentence := []string{"a", "b", "c", "d", "e"}

	got := Context(sentence, 2, 1)
	want := []string{"b", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestContextClippedAtStart(t *testing.T) {
	sentence := []string{"a", "b", "c", "d"}

	got := Context(sentence, 0, 2)
	want := []string{"b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestContextClippedAtEnd(t *testing.T) {
	sentence := []string{"a", "b", "c", "d"}

	got := Context(sentence, 3, 2)
	want := []string{"b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestContextExcludesCenter(t *testing.T) {
	sentence := []string{"x", "x", "x"}

	got := Context(sentence, 1, 5)
	if len(got) != 2 {
		t.Errorf("Expected 2 context tokens, got %d", len(got))
	}
}

func TestContextShortSentence(t *testing.T) {
	got := Context([]string{"only"}, 0, 5)
	if len(got) != 0 {
		t.Errorf("Single-token sentence should yield empty window, got %v", got)
	}
}

// TestContextPairCount verifies the window construction independently of
// aggregation: summing window sizes over all positions must equal the
// number of ordered pairs (i, j), i != j, with |i-j| <= radius.
func TestContextPairCount(t *testing.T) {
	for _, tc := range []struct {
		length, radius int
	}{
		{1, 1}, {2, 1}, {5, 2}, {7, 3}, {10, 5}, {3, 10},
	} {
		sentence := make([]string, tc.length)
		for i := range sentence {
			sentence[i] = "t"
		}

		total := 0
		for i := range sentence {
			total += len(Context(sentence, i, tc.radius))
		}

		want := 0
		for i := 0; i < tc.length; i++ {
			for j := 0; j < tc.length; j++ {
				if i != j && abs(i-j) <= tc.radius {
					want++
				}
			}
		}

		if total != want {
			t.Errorf("length=%d radius=%d: expected %d ordered pairs, got %d",
				tc.length, tc.radius, want, total)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(0) != MinRadius {
		t.Errorf("Clamp(0) should be %d, got %d", MinRadius, Clamp(0))
	}
	if Clamp(7) != 7 {
		t.Errorf("Clamp(7) should be 7, got %d", Clamp(7))
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
