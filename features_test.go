package seqset

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seqset/source"
	"github.com/hupe1980/seqset/testutil"
)

func featureDataset(t *testing.T) (*Dataset, *source.Memory) {
	t.Helper()
	gen := testutil.NewRNG(3)
	mem := source.NewMemory()
	mem.Put("a.fasta", testutil.Fasta(gen.Sequences(4, 12, "ACGT")))
	mem.Put("b.fasta", testutil.Fasta(gen.Sequences(2, 12, "ACGT")))

	ds, err := New(context.Background(), []string{"a.fasta", "b.fasta"}, "ACGT",
		WithSource(mem), WithSeed(9), WithAutoSplit(false))
	require.NoError(t, err)
	return ds, mem
}

func TestLoadFeatures(t *testing.T) {
	ctx := context.Background()

	t.Run("Numeric", func(t *testing.T) {
		ds, mem := featureDataset(t)
		mem.Put("a.txt", testutil.Lines([]string{"1.0", "2.5", "-3", "0"}))
		mem.Put("b.txt", testutil.Lines([]string{"4", "1e-1"}))

		require.NoError(t, ds.LoadFeatures(ctx, []string{"a.txt", "b.txt"}, false, false))
		assert.Equal(t, 1, ds.FeatureWidth())
		assert.Equal(t, []float32{1.0}, ds.Features(0))
		assert.Equal(t, []float32{2.5}, ds.Features(1))
		assert.Equal(t, []float32{-3}, ds.Features(2))
		assert.Equal(t, []float32{4}, ds.Features(4))
		assert.Equal(t, []float32{0.1}, ds.Features(5))
	})

	t.Run("NumericStandardized", func(t *testing.T) {
		ds, mem := featureDataset(t)
		// Population mean 4, stddev sqrt(2).
		mem.Put("a.txt", testutil.Lines([]string{"2", "4", "4", "6"}))
		mem.Put("b.txt", testutil.Lines([]string{"4", "4"}))

		require.NoError(t, ds.LoadFeatures(ctx, []string{"a.txt", "b.txt"}, false, true))
		assert.InDelta(t, -1.41421, ds.Features(0)[0], 1e-4)
		assert.InDelta(t, 0, ds.Features(1)[0], 1e-6)
		assert.InDelta(t, 1.41421, ds.Features(3)[0], 1e-4)
	})

	t.Run("Categorical", func(t *testing.T) {
		ds, mem := featureDataset(t)
		mem.Put("a.txt", testutil.Lines([]string{"exon", "intron", "exon", "utr"}))
		mem.Put("b.txt", testutil.Lines([]string{"utr", "intron"}))

		require.NoError(t, ds.LoadFeatures(ctx, []string{"a.txt", "b.txt"}, true, false))
		assert.Equal(t, 3, ds.FeatureWidth())

		// Lexicographic mapping: exon=0, intron=1, utr=2.
		assert.Equal(t, []float32{1, 0, 0}, ds.Features(0))
		assert.Equal(t, []float32{0, 1, 0}, ds.Features(1))
		assert.Equal(t, []float32{0, 0, 1}, ds.Features(3))
		assert.Equal(t, []float32{0, 0, 1}, ds.Features(4))
	})

	t.Run("MultipleBlocksConcatenate", func(t *testing.T) {
		ds, mem := featureDataset(t)
		mem.Put("n.txt", testutil.Lines([]string{"1", "2", "3", "4"}))
		mem.Put("n2.txt", testutil.Lines([]string{"5", "6"}))
		mem.Put("c.txt", testutil.Lines([]string{"x", "y", "x", "y"}))
		mem.Put("c2.txt", testutil.Lines([]string{"y", "x"}))

		require.NoError(t, ds.LoadFeatures(ctx, []string{"n.txt", "n2.txt"}, false, false))
		require.NoError(t, ds.LoadFeatures(ctx, []string{"c.txt", "c2.txt"}, true, false))

		assert.Equal(t, 3, ds.FeatureWidth())
		assert.Equal(t, []float32{1, 1, 0}, ds.Features(0))
		assert.Equal(t, []float32{6, 1, 0}, ds.Features(5))
	})

	t.Run("FileCountMismatch", func(t *testing.T) {
		ds, mem := featureDataset(t)
		mem.Put("a.txt", testutil.Lines([]string{"1", "2", "3", "4"}))

		err := ds.LoadFeatures(ctx, []string{"a.txt"}, false, false)
		var fce *FileCountError
		require.ErrorAs(t, err, &fce)
		assert.Equal(t, 2, fce.Want)
		assert.Equal(t, 1, fce.Got)
	})

	t.Run("LineCountMismatch", func(t *testing.T) {
		ds, mem := featureDataset(t)
		mem.Put("a.txt", testutil.Lines([]string{"1", "2", "3", "4"}))
		mem.Put("b.txt", testutil.Lines([]string{"5"}))

		err := ds.LoadFeatures(ctx, []string{"a.txt", "b.txt"}, false, false)
		var cme *CountMismatchError
		require.ErrorAs(t, err, &cme)
		assert.Equal(t, "b.txt", cme.File)
		assert.Equal(t, 2, cme.Want)
		assert.Equal(t, 1, cme.Got)
	})

	t.Run("BadNumericValue", func(t *testing.T) {
		ds, mem := featureDataset(t)
		mem.Put("a.txt", testutil.Lines([]string{"1", "2", "3", "4"}))
		mem.Put("b.txt", testutil.Lines([]string{"5", "six"}))

		err := ds.LoadFeatures(ctx, []string{"a.txt", "b.txt"}, false, false)
		var pve *ParseValueError
		require.ErrorAs(t, err, &pve)
		assert.Equal(t, "b.txt", pve.File)
		assert.Equal(t, "six", pve.Value)
	})

	t.Run("MissingFile", func(t *testing.T) {
		ds, mem := featureDataset(t)
		mem.Put("a.txt", testutil.Lines([]string{"1", "2", "3", "4"}))

		err := ds.LoadFeatures(ctx, []string{"a.txt", "missing.txt"}, false, false)
		assert.ErrorIs(t, err, source.ErrNotFound)
	})

	t.Run("FailedLoadLeavesStoreUsable", func(t *testing.T) {
		ds, mem := featureDataset(t)
		mem.Put("n.txt", testutil.Lines([]string{"1", "2", "3", "4"}))
		mem.Put("n2.txt", testutil.Lines([]string{"5", "6"}))
		require.NoError(t, ds.LoadFeatures(ctx, []string{"n.txt", "n2.txt"}, false, false))

		mem.Put("bad.txt", testutil.Lines([]string{"nope", "2", "3", "4"}))
		require.Error(t, ds.LoadFeatures(ctx, []string{"bad.txt", "n2.txt"}, false, false))

		assert.Equal(t, 1, ds.FeatureWidth())
		assert.Equal(t, []float32{1}, ds.Features(0))
	})

	t.Run("NoneLoaded", func(t *testing.T) {
		ds, _ := featureDataset(t)
		assert.Equal(t, 0, ds.FeatureWidth())
		assert.Nil(t, ds.Features(0))
	})
}

func TestLoadFeaturesMultiLabel(t *testing.T) {
	ctx := context.Background()
	gen := testutil.NewRNG(4)
	mem := source.NewMemory()
	headers := []string{"0", "0,1", "1", "2"}
	mem.Put("ml.fasta", testutil.FastaWithHeaders(headers, gen.Sequences(4, 8, "ACGT")))

	ds, err := NewMultiLabel(ctx, "ml.fasta", "ACGT",
		WithSource(mem), WithSeed(2), WithAutoSplit(false))
	require.NoError(t, err)

	lines := make([]string, 4)
	for i := range lines {
		lines[i] = fmt.Sprintf("%d", i)
	}
	mem.Put("ml.txt", testutil.Lines(lines))

	require.NoError(t, ds.LoadFeatures(ctx, []string{"ml.txt"}, false, false))
	assert.Equal(t, []float32{2}, ds.Features(2))
}
