// Package fasta parses the single-line FASTA variant used for sequence and
// sequence-structure input files.
//
// A record is a header line starting with '>' followed by one or more block
// lines (one sequence line, optionally a structure line or several PWM rows).
// Block lines are kept separate; interpretation is left to the caller.
package fasta

import (
	"bufio"
	"io"
	"strings"
)

// maxLineSize bounds a single input line. Sequences span one line each, so
// this also bounds the sequence length.
const maxLineSize = 64 * 1024 * 1024

// Record is one parsed FASTA block: the header (without the '>' marker) and
// the raw lines following it up to the next header.
type Record struct {
	Header string
	Block  []string
}

// Parse reads all records from r. Empty lines are skipped. Content before the
// first header is ignored.
func Parse(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	var records []Record
	started := false
	var current Record
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		if line[0] == '>' {
			if started {
				records = append(records, current)
			}
			started = true
			current = Record{Header: line[1:]}
			continue
		}
		if started {
			current.Block = append(current.Block, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if started {
		records = append(records, current)
	}
	return records, nil
}
