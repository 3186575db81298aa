package alphabet

// Encoder one-hot encodes sequence strings over a single alphabet.
// It is immutable after construction and safe for concurrent use.
type Encoder struct {
	symbols string
	index   indexTable
}

// NewEncoder creates an Encoder for the given alphabet.
// The alphabet must be non-empty, contain only supported characters and no
// duplicates.
func NewEncoder(symbols string) (*Encoder, error) {
	if err := Validate(symbols); err != nil {
		return nil, err
	}
	return &Encoder{symbols: symbols, index: buildIndex(symbols)}, nil
}

// Symbols returns the alphabet string in index order.
func (e *Encoder) Symbols() string { return e.symbols }

// Size returns the number of symbols in the alphabet.
func (e *Encoder) Size() int { return len(e.symbols) }

// Contains reports whether c is part of the alphabet.
func (e *Encoder) Contains(c byte) bool { return e.index[c] >= 0 }

// Encode converts a sequence into a one-hot matrix of shape
// (len(sequence), Size()). Every character must belong to the alphabet;
// sequences are expected to be sanitized upstream.
func (e *Encoder) Encode(sequence string) (Matrix, error) {
	m := NewMatrix(len(sequence), len(e.symbols))
	for i := 0; i < len(sequence); i++ {
		j := e.index[sequence[i]]
		if j < 0 {
			return Matrix{}, &UnknownCharError{Char: sequence[i], Pos: i}
		}
		m.Set(i, int(j), 1)
	}
	return m, nil
}

// Decode is the inverse of Encode. Rows that are not strictly one-hot are
// decoded by argmax, ties resolving to the lowest index.
func (e *Encoder) Decode(m Matrix) (string, error) {
	if m.Cols != len(e.symbols) {
		return "", &ShapeError{Expected: len(e.symbols), Actual: m.Cols}
	}
	out := make([]byte, m.Rows)
	for i := 0; i < m.Rows; i++ {
		out[i] = e.symbols[m.ArgmaxRow(i)]
	}
	return string(out), nil
}
