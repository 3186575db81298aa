package seqset

import (
	"github.com/hupe1980/seqset/alphabet"
	"github.com/hupe1980/seqset/internal/rng"
)

// Batch bundles up to batchSize records' encoded tensors with their label
// vectors and, when present, auxiliary feature vectors. Slices share storage
// with the dataset and must not be mutated.
type Batch struct {
	// Inputs holds one encoded tensor per record.
	Inputs []alphabet.Matrix
	// Aux holds one concatenated feature vector per record; nil when the
	// dataset has no feature blocks or aux output is disabled.
	Aux [][]float32
	// Labels holds one binary membership vector per record; nil when label
	// output is disabled.
	Labels [][]uint8
}

type batchOptions struct {
	shuffle       bool
	seed          int64
	seedSet       bool
	includeLabels bool
	includeAux    bool
	selection     []int
}

// BatchOption configures a batch iterator.
type BatchOption func(*batchOptions)

// WithShuffle re-permutes the iteration order at the start of every full pass
// through the group.
func WithShuffle() BatchOption {
	return func(o *batchOptions) {
		o.shuffle = true
	}
}

// WithBatchSeed seeds the shuffle. The generator is re-seeded at the start of
// every pass, so each pass walks the same permutation. Implies nothing
// without WithShuffle.
func WithBatchSeed(seed int64) BatchOption {
	return func(o *batchOptions) {
		o.seed = seed
		o.seedSet = true
	}
}

// WithoutLabels omits label vectors from the produced batches.
func WithoutLabels() BatchOption {
	return func(o *batchOptions) {
		o.includeLabels = false
	}
}

// WithoutAux omits auxiliary feature vectors from the produced batches even
// when feature blocks are loaded.
func WithoutAux() BatchOption {
	return func(o *batchOptions) {
		o.includeAux = false
	}
}

// WithSelection restricts iteration to the given positions within the group's
// index array, preserving their order. Positions are validated against the
// group size when the iterator is created.
func WithSelection(positions []int) BatchOption {
	return func(o *batchOptions) {
		o.selection = positions
	}
}

// BatchIterator produces an unbounded, restartable sequence of batches over
// one group. It walks the (possibly shuffled) index sequence in fixed-size
// contiguous windows and cycles forever; the final window of a pass may be
// shorter than the batch size. Shuffling mutates only the iterator's working
// copy of the indices.
type BatchIterator struct {
	ds   *Dataset
	work []int
	pos  int
	size int
	o    batchOptions
	r    *rng.RNG
}

// Batches creates a batch iterator over the resolved group.
func (ds *Dataset) Batches(group Group, batchSize int, optFns ...BatchOption) (*BatchIterator, error) {
	if batchSize <= 0 {
		return nil, ErrInvalidBatchSize
	}

	o := batchOptions{includeLabels: true, includeAux: true}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	idx, err := ds.GroupIndices(group)
	if err != nil {
		return nil, err
	}
	if o.selection != nil {
		selected := make([]int, len(o.selection))
		for i, pos := range o.selection {
			if pos < 0 || pos >= len(idx) {
				return nil, &SelectionError{Position: pos, Size: len(idx)}
			}
			selected[i] = idx[pos]
		}
		idx = selected
	}
	if len(idx) == 0 {
		return nil, ErrEmptyGroup
	}

	work := make([]int, len(idx))
	copy(work, idx)

	it := &BatchIterator{
		ds:   ds,
		work: work,
		size: batchSize,
		o:    o,
	}
	if o.shuffle && !o.seedSet {
		it.r = rng.New(ds.rng.Int63())
	}
	return it, nil
}

// Next produces the next batch, suspending between calls; it never returns
// nil. After the final (possibly short) window of a pass, the next call
// starts a new pass, reshuffling first when shuffle is enabled.
func (it *BatchIterator) Next() *Batch {
	if it.pos == 0 && it.o.shuffle {
		if it.o.seedSet {
			it.r = rng.New(it.o.seed)
		}
		it.r.Shuffle(len(it.work), func(i, j int) {
			it.work[i], it.work[j] = it.work[j], it.work[i]
		})
	}

	end := it.pos + it.size
	if end > len(it.work) {
		end = len(it.work)
	}
	window := it.work[it.pos:end]

	batch := &Batch{Inputs: make([]alphabet.Matrix, len(window))}
	for i, x := range window {
		batch.Inputs[i] = it.ds.records[x]
	}
	if it.o.includeLabels {
		batch.Labels = make([][]uint8, len(window))
		for i, x := range window {
			batch.Labels[i] = it.ds.labels[x]
		}
	}
	if it.o.includeAux && it.ds.features != nil && it.ds.features.NumBlocks() > 0 {
		batch.Aux = make([][]float32, len(window))
		for i, x := range window {
			batch.Aux[i] = it.ds.features.Get(x)
		}
	}

	it.pos = end
	if it.pos >= len(it.work) {
		it.pos = 0
	}
	return batch
}

// Reset restarts the iterator at the beginning of a fresh pass.
func (it *BatchIterator) Reset() {
	it.pos = 0
}
