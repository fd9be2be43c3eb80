// Package corpus reads pre-tokenized text: one sentence per line, tokens
// whitespace-delimited. No tokenization or case folding happens here.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ProgressInterval is how many lines pass between progress callbacks.
const ProgressInterval = 1_000_000

// ProgressFunc is called at line-count milestones during a corpus scan.
type ProgressFunc func(lines int64)

// Scan streams sentences from r, calling fn for each one. Empty lines are
// empty sentences and are passed through (they contribute nothing to the
// counts). progress may be nil.
func Scan(r io.Reader, progress ProgressFunc, fn func(sentence []string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var lines int64
	for scanner.Scan() {
		lines++
		fn(strings.Fields(scanner.Text()))
		if progress != nil && lines%ProgressInterval == 0 {
			progress(lines)
		}
	}
	return scanner.Err()
}

// ScanFile streams sentences from the file at path.
func ScanFile(path string, progress ProgressFunc, fn func(sentence []string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open corpus %s: %w", path, err)
	}
	defer f.Close()
	return Scan(f, progress, fn)
}

// ReadAll loads every sentence into memory, for the parallel aggregation
// path that shards sentences across workers.
func ReadAll(r io.Reader) ([][]string, error) {
	var sentences [][]string
	err := Scan(r, nil, func(sentence []string) {
		sentences = append(sentences, sentence)
	})
	return sentences, err
}

// ReadAllFile loads every sentence from the file at path.
func ReadAllFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus %s: %w", path, err)
	}
	defer f.Close()
	return ReadAll(f)
}
