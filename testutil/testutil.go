package testutil

import (
	"fmt"
	"math/rand"
	"strings"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Sequence generates one random sequence of the given length over symbols.
func (r *RNG) Sequence(length int, symbols string) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(symbols[r.rand.Intn(len(symbols))])
	}
	return b.String()
}

// Sequences generates num random sequences of uniform length over symbols.
func (r *RNG) Sequences(num, length int, symbols string) []string {
	out := make([]string, num)
	for i := range out {
		out[i] = r.Sequence(length, symbols)
	}
	return out
}

// Structures generates num random structure strings of uniform length over
// symbols, for pairing with Sequences output.
func (r *RNG) Structures(num, length int, symbols string) []string {
	return r.Sequences(num, length, symbols)
}

// Fasta renders sequences as single-line FASTA content with ">i" headers.
func Fasta(sequences []string) []byte {
	var b strings.Builder
	for i, seq := range sequences {
		fmt.Fprintf(&b, ">%d\n%s\n", i, seq)
	}
	return []byte(b.String())
}

// FastaWithHeaders renders sequences with explicit headers, e.g. multi-label
// headers like "0,2".
func FastaWithHeaders(headers, sequences []string) []byte {
	var b strings.Builder
	for i, seq := range sequences {
		fmt.Fprintf(&b, ">%s\n%s\n", headers[i], seq)
	}
	return []byte(b.String())
}

// FastaWithStructures renders position-paired sequence/structure records.
func FastaWithStructures(sequences, structures []string) []byte {
	var b strings.Builder
	for i, seq := range sequences {
		fmt.Fprintf(&b, ">%d\n%s\n%s\n", i, seq, structures[i])
	}
	return []byte(b.String())
}

// FastaWithPWMs renders sequence records followed by PWM rows: for each
// record, pwms[i] holds one row per secondary symbol, each row one value per
// sequence position.
func FastaWithPWMs(sequences []string, pwms [][][]float32) []byte {
	var b strings.Builder
	for i, seq := range sequences {
		fmt.Fprintf(&b, ">%d\n%s\n", i, seq)
		for _, row := range pwms[i] {
			cells := make([]string, len(row))
			for j, v := range row {
				cells[j] = fmt.Sprintf("%g", v)
			}
			fmt.Fprintf(&b, "%s\n", strings.Join(cells, " "))
		}
	}
	return []byte(b.String())
}

// Lines renders one value per line, the auxiliary feature file format.
func Lines(values []string) []byte {
	return []byte(strings.Join(values, "\n") + "\n")
}
