package seqset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seqset/alphabet"
	"github.com/hupe1980/seqset/source"
	"github.com/hupe1980/seqset/testutil"
)

func batchDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := New(context.Background(), []string{"pos.fasta", "neg.fasta"}, "ACGT",
		WithSource(twoClassDNA(t, 10)), WithSeed(5))
	require.NoError(t, err)
	return ds
}

func TestBatches(t *testing.T) {
	t.Run("FixedWindows", func(t *testing.T) {
		ds := batchDataset(t)
		it, err := ds.Batches(GroupTrain, 32)
		require.NoError(t, err)

		// Train group has 70 records: 32 + 32 + 6, then wraps.
		assert.Len(t, it.Next().Inputs, 32)
		assert.Len(t, it.Next().Inputs, 32)
		assert.Len(t, it.Next().Inputs, 6)
		assert.Len(t, it.Next().Inputs, 32)
	})

	t.Run("LabelsAligned", func(t *testing.T) {
		ds := batchDataset(t)
		it, err := ds.Batches(GroupAll, 100)
		require.NoError(t, err)

		batch := it.Next()
		require.Len(t, batch.Labels, 100)
		sums := labelSums(batch.Labels)
		assert.Equal(t, []int{40, 60}, sums)
		for i, vec := range batch.Labels {
			assert.Equal(t, ds.labels[i], vec)
		}
	})

	t.Run("WithoutLabels", func(t *testing.T) {
		ds := batchDataset(t)
		it, err := ds.Batches(GroupTrain, 16, WithoutLabels())
		require.NoError(t, err)

		batch := it.Next()
		assert.Len(t, batch.Inputs, 16)
		assert.Nil(t, batch.Labels)
	})

	t.Run("InfiniteCycle", func(t *testing.T) {
		ds := batchDataset(t)
		it, err := ds.Batches(GroupVal, 7)
		require.NoError(t, err)

		// Val group has 15 records: windows of 7, 7, 1 per pass.
		for pass := 0; pass < 3; pass++ {
			assert.Len(t, it.Next().Inputs, 7)
			assert.Len(t, it.Next().Inputs, 7)
			assert.Len(t, it.Next().Inputs, 1)
		}
	})

	t.Run("UnshuffledOrderIsStable", func(t *testing.T) {
		ds := batchDataset(t)
		it, err := ds.Batches(GroupAll, 100)
		require.NoError(t, err)

		first := it.Next()
		second := it.Next()
		assert.Equal(t, first.Inputs, second.Inputs)
	})

	t.Run("SeededShuffleRepeatsEveryPass", func(t *testing.T) {
		ds := batchDataset(t)
		it, err := ds.Batches(GroupAll, 100, WithShuffle(), WithBatchSeed(21))
		require.NoError(t, err)

		first := it.Next()
		second := it.Next()
		assert.Equal(t, first.Inputs, second.Inputs)
		assert.Equal(t, first.Labels, second.Labels)

		// And the permutation is not the identity.
		assert.NotEqual(t, allRecords(ds), first.Inputs)
	})

	t.Run("UnseededShuffleVariesBetweenPasses", func(t *testing.T) {
		ds := batchDataset(t)
		it, err := ds.Batches(GroupAll, 100, WithShuffle())
		require.NoError(t, err)

		first := it.Next()
		second := it.Next()
		assert.NotEqual(t, first.Inputs, second.Inputs)
	})

	t.Run("Selection", func(t *testing.T) {
		ds := batchDataset(t)
		all, err := ds.GroupIndices(GroupAll)
		require.NoError(t, err)

		it, err := ds.Batches(GroupAll, 3, WithSelection([]int{5, 1, 9}))
		require.NoError(t, err)

		batch := it.Next()
		require.Len(t, batch.Inputs, 3)
		assert.Equal(t, ds.Record(all[5]), batch.Inputs[0])
		assert.Equal(t, ds.Record(all[1]), batch.Inputs[1])
		assert.Equal(t, ds.Record(all[9]), batch.Inputs[2])
	})

	t.Run("SelectionOutOfRange", func(t *testing.T) {
		ds := batchDataset(t)
		_, err := ds.Batches(GroupVal, 3, WithSelection([]int{100}))
		var se *SelectionError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, 100, se.Position)
		assert.Equal(t, 15, se.Size)
	})

	t.Run("InvalidBatchSize", func(t *testing.T) {
		ds := batchDataset(t)
		_, err := ds.Batches(GroupTrain, 0)
		assert.ErrorIs(t, err, ErrInvalidBatchSize)
	})

	t.Run("EmptyGroup", func(t *testing.T) {
		ds := batchDataset(t)
		require.NoError(t, ds.Split(1.0, 0.0))
		_, err := ds.Batches(GroupVal, 4)
		assert.ErrorIs(t, err, ErrEmptyGroup)
	})

	t.Run("NotSplit", func(t *testing.T) {
		ds, err := New(context.Background(), []string{"pos.fasta", "neg.fasta"}, "ACGT",
			WithSource(twoClassDNA(t, 10)), WithSeed(5), WithAutoSplit(false))
		require.NoError(t, err)
		_, err = ds.Batches(GroupTrain, 4)
		assert.ErrorIs(t, err, ErrNotSplit)
	})

	t.Run("Reset", func(t *testing.T) {
		ds := batchDataset(t)
		it, err := ds.Batches(GroupTrain, 32)
		require.NoError(t, err)

		first := it.Next()
		it.Reset()
		again := it.Next()
		assert.Equal(t, first.Inputs, again.Inputs)
	})
}

func TestBatchesAux(t *testing.T) {
	ctx := context.Background()

	newWithFeatures := func(t *testing.T) *Dataset {
		t.Helper()
		ds := batchDataset(t)

		mem := source.NewMemory()
		pos := make([]string, 40)
		for i := range pos {
			pos[i] = "0.5"
		}
		neg := make([]string, 60)
		for i := range neg {
			neg[i] = "1.5"
		}
		mem.Put("pos.txt", testutil.Lines(pos))
		mem.Put("neg.txt", testutil.Lines(neg))
		ds.opener = mem
		require.NoError(t, ds.LoadFeatures(ctx, []string{"pos.txt", "neg.txt"}, false, false))
		return ds
	}

	t.Run("AuxIncluded", func(t *testing.T) {
		ds := newWithFeatures(t)
		it, err := ds.Batches(GroupAll, 100)
		require.NoError(t, err)

		batch := it.Next()
		require.Len(t, batch.Aux, 100)
		assert.Equal(t, []float32{0.5}, batch.Aux[0])
		assert.Equal(t, []float32{1.5}, batch.Aux[99])
	})

	t.Run("WithoutAux", func(t *testing.T) {
		ds := newWithFeatures(t)
		it, err := ds.Batches(GroupAll, 10, WithoutAux())
		require.NoError(t, err)
		assert.Nil(t, it.Next().Aux)
	})

	t.Run("NoFeaturesLoaded", func(t *testing.T) {
		ds := batchDataset(t)
		it, err := ds.Batches(GroupAll, 10)
		require.NoError(t, err)
		assert.Nil(t, it.Next().Aux)
	})
}

// allRecords returns the full dataset in original order, the expected inputs
// of an unshuffled "all" pass.
func allRecords(ds *Dataset) []alphabet.Matrix {
	out := make([]alphabet.Matrix, ds.Len())
	for i := range out {
		out[i] = ds.Record(i)
	}
	return out
}
