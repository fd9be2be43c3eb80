// Package tables persists unigram and co-occurrence count tables as TSV.
//
// The unigram file has one "token\tcount" record per line, emitted in
// descending count order. The co-occurrence file has one
// "tokenA tokenB\tcount" record per line (tokens space-separated, canonical
// order); it is emitted in map iteration order, not sorted — sorting tens
// of millions of pair keys costs more memory than the tool is willing to
// spend, and no consumer depends on the order.
package tables

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
	"github.com/cognicore/lexstat/pkg/lexstat/pair"
)

// WriteUnigram writes a unigram table in descending count order, ties
// broken arbitrarily.
func WriteUnigram(w io.Writer, table map[string]int64) error {
	type entry struct {
		token string
		count int64
	}
	entries := make([]entry, 0, len(table))
	for tok, n := range table {
		entries = append(entries, entry{tok, n})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", e.token, e.count); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteCooccur writes a co-occurrence table in map iteration order.
func WriteCooccur(w io.Writer, table map[pair.Pair]int64) error {
	bw := bufio.NewWriter(w)
	for p, n := range table {
		if _, err := fmt.Fprintf(bw, "%s %s\t%d\n", p.A, p.B, n); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteUnigramFile writes a unigram table to path.
func WriteUnigramFile(path string, table map[string]int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteUnigram(f, table); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteCooccurFile writes a co-occurrence table to path.
func WriteCooccurFile(path string, table map[pair.Pair]int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCooccur(f, table); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadUnigram reconstructs a unigram table. Any row that does not split
// into token and count, or whose count is not a non-negative integer,
// aborts the load: a partially read table would make downstream totals
// silently wrong.
func ReadUnigram(r io.Reader) (map[string]int64, error) {
	table := make(map[string]int64)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	linenum := 0
	for scanner.Scan() {
		linenum++
		token, count, err := splitCount(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("unigram line %d: %w", linenum, err)
		}
		table[token] = count
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// ReadCooccur reconstructs a co-occurrence table, canonicalizing each pair
// on load. The aggregator always emits canonical order, but external files
// need not.
func ReadCooccur(r io.Reader) (map[pair.Pair]int64, error) {
	table := make(map[pair.Pair]int64)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	linenum := 0
	for scanner.Scan() {
		linenum++
		pairField, count, err := splitCount(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("cooccur line %d: %w", linenum, err)
		}
		w1, w2, ok := strings.Cut(pairField, " ")
		if !ok {
			return nil, fmt.Errorf("cooccur line %d: pair field %q: %w",
				linenum, pairField, internalerr.ErrMalformedRow)
		}
		table[pair.Make(w1, w2)] = count
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// ReadUnigramFile loads a unigram table from path.
func ReadUnigramFile(path string) (map[string]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadUnigram(f)
}

// ReadCooccurFile loads a co-occurrence table from path.
func ReadCooccurFile(path string) (map[pair.Pair]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCooccur(f)
}

// splitCount splits "key\tcount" and validates the count.
func splitCount(line string) (string, int64, error) {
	key, countField, ok := strings.Cut(line, "\t")
	if !ok {
		return "", 0, fmt.Errorf("%q: %w", line, internalerr.ErrMalformedRow)
	}
	count, err := strconv.ParseInt(countField, 10, 64)
	if err != nil || count < 0 {
		return "", 0, fmt.Errorf("count %q: %w", countField, internalerr.ErrMalformedRow)
	}
	return key, count, nil
}
