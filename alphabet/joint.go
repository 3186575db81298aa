package alphabet

// Joiner one-hot encodes position-paired (sequence, structure) strings over
// the joint alphabet formed by the Cartesian product of a primary and a
// secondary alphabet. The joint index of a pair is
//
//	primaryIndex * |secondary| + secondaryIndex
//
// so each primary symbol owns a contiguous slice of |secondary| columns.
// It is immutable after construction and safe for concurrent use.
type Joiner struct {
	primary   string
	secondary string
	pIndex    indexTable
	sIndex    indexTable
}

// NewJoiner creates a Joiner from a primary (sequence) and a secondary
// (structure) alphabet. Both must be valid alphabets and must not share
// characters: the joiner relies on character identity to disambiguate
// lookups.
func NewJoiner(primary, secondary string) (*Joiner, error) {
	if err := Validate(primary); err != nil {
		return nil, err
	}
	if err := Validate(secondary); err != nil {
		return nil, err
	}
	for i := 0; i < len(primary); i++ {
		for j := 0; j < len(secondary); j++ {
			if primary[i] == secondary[j] {
				return nil, &OverlapError{Char: primary[i]}
			}
		}
	}
	return &Joiner{
		primary:   primary,
		secondary: secondary,
		pIndex:    buildIndex(primary),
		sIndex:    buildIndex(secondary),
	}, nil
}

// Primary returns the primary (sequence) alphabet.
func (j *Joiner) Primary() string { return j.primary }

// Secondary returns the secondary (structure) alphabet.
func (j *Joiner) Secondary() string { return j.secondary }

// Size returns the joint alphabet size, |primary| * |secondary|.
func (j *Joiner) Size() int { return len(j.primary) * len(j.secondary) }

// Encode converts an equal-length (sequence, structure) pair into a one-hot
// matrix of shape (len(sequence), Size()). Both strings must be sanitized
// against their respective alphabets upstream.
func (j *Joiner) Encode(sequence, structure string) (Matrix, error) {
	if len(sequence) != len(structure) {
		return Matrix{}, &LengthMismatchError{SeqLen: len(sequence), OtherLen: len(structure)}
	}
	m := NewMatrix(len(sequence), j.Size())
	for i := 0; i < len(sequence); i++ {
		pi := j.pIndex[sequence[i]]
		if pi < 0 {
			return Matrix{}, &UnknownCharError{Char: sequence[i], Pos: i}
		}
		si := j.sIndex[structure[i]]
		if si < 0 {
			return Matrix{}, &UnknownCharError{Char: structure[i], Pos: i}
		}
		m.Set(i, int(pi)*len(j.secondary)+int(si), 1)
	}
	return m, nil
}

// EncodePWM converts a sequence paired with a position-weight matrix over the
// secondary alphabet into a joint matrix of shape (len(sequence), Size()).
// pwm must have one row per sequence position and |secondary| columns; row i
// is copied into the column slice owned by the primary symbol at position i,
// all other columns remain zero. Columns of the PWM are expected to describe
// probability distributions; this is not enforced here.
func (j *Joiner) EncodePWM(sequence string, pwm Matrix) (Matrix, error) {
	if pwm.Rows != len(sequence) {
		return Matrix{}, &LengthMismatchError{SeqLen: len(sequence), OtherLen: pwm.Rows}
	}
	if pwm.Cols != len(j.secondary) {
		return Matrix{}, &ShapeError{Expected: len(j.secondary), Actual: pwm.Cols}
	}
	m := NewMatrix(len(sequence), j.Size())
	for i := 0; i < len(sequence); i++ {
		pi := j.pIndex[sequence[i]]
		if pi < 0 {
			return Matrix{}, &UnknownCharError{Char: sequence[i], Pos: i}
		}
		copy(m.Row(i)[int(pi)*len(j.secondary):], pwm.Row(i))
	}
	return m, nil
}

// Decode is the inverse of Encode, recovering the (sequence, structure) pair.
// Rows that are not strictly one-hot (e.g. PWM-encoded records) are decoded
// by argmax, ties resolving to the lowest index.
func (j *Joiner) Decode(m Matrix) (sequence, structure string, err error) {
	if m.Cols != j.Size() {
		return "", "", &ShapeError{Expected: j.Size(), Actual: m.Cols}
	}
	seq := make([]byte, m.Rows)
	str := make([]byte, m.Rows)
	for i := 0; i < m.Rows; i++ {
		idx := m.ArgmaxRow(i)
		seq[i] = j.primary[idx/len(j.secondary)]
		str[i] = j.secondary[idx%len(j.secondary)]
	}
	return string(seq), string(str), nil
}
