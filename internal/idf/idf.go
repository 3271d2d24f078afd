package idf

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedWeightFile reports an unparseable data line in an IDF weight
// file. The table cannot be partially trusted, so nothing is loaded.
var ErrMalformedWeightFile = errors.New("malformed idf weight file")

// Table maps tokens to inverse-document-frequency weights derived from a
// background corpus. Immutable after Load; safe for concurrent reads.
type Table map[string]float64

// Weight returns the IDF weight for token, or 0 when the background corpus
// never saw it. The zero fallback is deliberate: unknown tokens contribute
// nothing to a tf-idf vector.
func (t Table) Weight(token string) float64 {
	return t[token]
}

// Load reads a weight file. The first line is a header and is skipped; every
// following line must be "<token> <weight>" separated by whitespace. Any
// malformed data line fails the whole load.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table := make(Table)
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: want \"token weight\", got %q",
				ErrMalformedWeightFile, line, scanner.Text())
		}
		weight, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: weight %q is not numeric",
				ErrMalformedWeightFile, line, fields[1])
		}
		table[fields[0]] = weight
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return table, nil
}
