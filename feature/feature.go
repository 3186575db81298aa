package feature

import (
	"fmt"
	"math"
	"sort"
)

// MaxCategories is the maximum number of distinct values a categorical block
// may contain.
const MaxCategories = 256

// Kind tags the value type of a feature block.
type Kind uint8

const (
	// Numeric blocks hold one float per record.
	Numeric Kind = iota + 1
	// Categorical blocks hold a one-hot vector per record.
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// TooManyCategoriesError indicates a categorical block exceeding
// MaxCategories distinct values.
type TooManyCategoriesError struct {
	Count int
}

func (e *TooManyCategoriesError) Error() string {
	return fmt.Sprintf("too many categories (%d), a maximum of %d are supported", e.Count, MaxCategories)
}

// CountError indicates a block whose value count does not match the store's
// record count.
type CountError struct {
	Want int
	Got  int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("number of feature values (%d) doesn't match number of records (%d)", e.Got, e.Want)
}

// Block is one immutable feature block: a per-record value of uniform width.
type Block struct {
	kind   Kind
	width  int
	values [][]float32
}

// Kind returns the block's value kind.
func (b *Block) Kind() Kind { return b.kind }

// Width returns the per-record vector width (1 for numeric blocks).
func (b *Block) Width() int { return b.width }

// Store holds feature blocks for a fixed number of records.
// Not safe for concurrent mutation; see the dataset concurrency contract.
type Store struct {
	numRecords int
	blocks     []*Block
	categories [][]string
}

// NewStore creates a Store for the given record count.
func NewStore(numRecords int) *Store {
	return &Store{numRecords: numRecords}
}

// Len returns the record count the store was built for.
func (s *Store) Len() int { return s.numRecords }

// NumBlocks returns the number of blocks added so far.
func (s *Store) NumBlocks() int { return len(s.blocks) }

// Width returns the total per-record vector width across all blocks.
func (s *Store) Width() int {
	w := 0
	for _, b := range s.blocks {
		w += b.width
	}
	return w
}

// AddNumeric appends a numeric block. values must have one entry per record.
// If standardize is true the block is z-scored over all records; a block with
// zero variance standardizes to all zeros.
func (s *Store) AddNumeric(values []float32, standardize bool) error {
	if len(values) != s.numRecords {
		return &CountError{Want: s.numRecords, Got: len(values)}
	}
	if standardize {
		values = zscore(values)
	}
	rows := make([][]float32, len(values))
	for i, v := range values {
		rows[i] = []float32{v}
	}
	s.blocks = append(s.blocks, &Block{kind: Numeric, width: 1, values: rows})
	s.categories = append(s.categories, nil)
	return nil
}

// AddCategorical appends a categorical block, one-hot encoding values over
// the distinct categories observed. Categories map to indices in
// lexicographic order, so the encoding is stable across runs. At most
// MaxCategories distinct values are allowed.
func (s *Store) AddCategorical(values []string) error {
	if len(values) != s.numRecords {
		return &CountError{Want: s.numRecords, Got: len(values)}
	}

	distinct := make(map[string]int)
	for _, v := range values {
		distinct[v] = 0
	}
	if len(distinct) > MaxCategories {
		return &TooManyCategoriesError{Count: len(distinct)}
	}

	cats := make([]string, 0, len(distinct))
	for v := range distinct {
		cats = append(cats, v)
	}
	sort.Strings(cats)
	for i, v := range cats {
		distinct[v] = i
	}

	rows := make([][]float32, len(values))
	for i, v := range values {
		row := make([]float32, len(cats))
		row[distinct[v]] = 1
		rows[i] = row
	}
	s.blocks = append(s.blocks, &Block{kind: Categorical, width: len(cats), values: rows})
	s.categories = append(s.categories, cats)
	return nil
}

// BlockCategories returns the category labels of block i in index order, or
// nil for numeric blocks.
func (s *Store) BlockCategories(i int) []string {
	return s.categories[i]
}

// BlockKind returns the kind of block i.
func (s *Store) BlockKind(i int) Kind {
	return s.blocks[i].kind
}

// Get returns the concatenated feature vector for one record, blocks in the
// order they were added. The returned slice is freshly allocated.
func (s *Store) Get(record int) []float32 {
	out := make([]float32, 0, s.Width())
	for _, b := range s.blocks {
		out = append(out, b.values[record]...)
	}
	return out
}

// zscore standardizes values to zero mean and unit (population) standard
// deviation.
func zscore(values []float32) []float32 {
	n := float64(len(values))
	var mean float64
	for _, v := range values {
		mean += float64(v)
	}
	mean /= n

	var variance float64
	for _, v := range values {
		d := float64(v) - mean
		variance += d * d
	}
	variance /= n

	out := make([]float32, len(values))
	if variance == 0 {
		return out
	}
	std := math.Sqrt(variance)
	for i, v := range values {
		out[i] = float32((float64(v) - mean) / std)
	}
	return out
}
