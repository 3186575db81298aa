package seqset

import (
	"context"
	"math"

	"github.com/hupe1980/seqset/internal/rng"
)

// Group names a subset of the dataset's record indices.
type Group string

const (
	// GroupTrain is the training subset.
	GroupTrain Group = "train"
	// GroupVal is the validation subset.
	GroupVal Group = "val"
	// GroupTest is the test subset.
	GroupTest Group = "test"
	// GroupAll is the virtual group covering every record in original order.
	// It is computed on demand and never stored.
	GroupAll Group = "all"
)

// assignment is one train/val/test partition: three disjoint, collectively
// exhaustive slices cut from a permutation of the record indices. Derived
// data; discarding and recomputing it does not affect records or labels.
type assignment struct {
	train []int
	val   []int
	test  []int
}

// Split randomly partitions the record indices into train/val/test groups.
// portionTest is implicit: 1 - portionTrain - portionVal. A permutation of
// all indices is cut at floor(N*portionTrain) and
// floor(N*(portionTrain+portionVal)); the three contiguous slices become
// train, val and test. Any previous assignment is overwritten.
//
// Split draws from the dataset generator, so repeated calls produce different
// partitions; use SplitWithSeed for a reproducible one.
func (ds *Dataset) Split(portionTrain, portionVal float64) error {
	return ds.split(portionTrain, portionVal, ds.rng.Perm)
}

// SplitWithSeed is Split with a dedicated generator seeded with seed
// immediately before permuting, making the partition reproducible.
func (ds *Dataset) SplitWithSeed(portionTrain, portionVal float64, seed int64) error {
	return ds.split(portionTrain, portionVal, newSeededPerm(seed))
}

func newSeededPerm(seed int64) func(int) []int {
	return rng.New(seed).Perm
}

func (ds *Dataset) split(portionTrain, portionVal float64, perm func(int) []int) error {
	if portionTrain < 0 || portionVal < 0 || portionTrain+portionVal > 1 {
		return ErrInvalidPortions
	}

	n := len(ds.records)
	breakTrain := int(math.Floor(float64(n) * portionTrain))
	breakVal := int(math.Floor(float64(n) * (portionTrain + portionVal)))

	p := perm(n)
	ds.splits = &assignment{
		train: p[:breakTrain],
		val:   p[breakTrain:breakVal],
		test:  p[breakVal:],
	}

	ds.logger.LogSplit(context.Background(), breakTrain, breakVal-breakTrain, n-breakVal)
	return nil
}

// GroupIndices resolves a group name to its record indices. "all" yields the
// full range in original order; the other groups return the stored slices in
// permutation order. The returned slice must not be mutated.
func (ds *Dataset) GroupIndices(group Group) ([]int, error) {
	if group == GroupAll {
		idx := make([]int, len(ds.records))
		for i := range idx {
			idx[i] = i
		}
		return idx, nil
	}
	if ds.splits == nil {
		return nil, ErrNotSplit
	}
	switch group {
	case GroupTrain:
		return ds.splits.train, nil
	case GroupVal:
		return ds.splits.val, nil
	case GroupTest:
		return ds.splits.test, nil
	default:
		return nil, &UnknownGroupError{Group: group}
	}
}
