// Package seqset loads biological sequence (and optionally structure) data in
// a FASTA-like text format, one-hot encodes it into fixed-size numeric
// tensors, derives multi-label class membership vectors, and partitions the
// records into training/validation/test sets for classifier training.
//
// # Input
//
// For single-label classification pass one FASTA file per class (the first
// file is class 0, headers are ignored). For multi-label classification pass
// a single file whose headers are comma-separated class indices (e.g. ">0,2").
// Sequence-structure data carries one structure line per record, or
// |structure alphabet| PWM rows of per-position probabilities. All sequences
// across all files must have the same length.
//
// Characters outside the declared alphabet are not an error: they are
// replaced with uniformly random alphabet characters at load time. This
// repair is lossy; seed the dataset via WithSeed to make it reproducible.
//
// # Usage
//
//	ds, err := seqset.New(ctx, []string{"pos.fasta", "neg.fasta"}, "ACGT",
//		seqset.WithSeed(42))
//	if err != nil {
//		log.Fatal(err)
//	}
//	it, err := ds.Batches(seqset.GroupTrain, 128, seqset.WithShuffle())
//	if err != nil {
//		log.Fatal(err)
//	}
//	batch := it.Next() // infinite, restartable
//
// # Concurrency
//
// Load, split and feature loading mutate the dataset and must not run
// concurrently with each other or with batch iteration. Mutating the dataset
// while a batch iterator is mid-pass is undefined behavior. Batch iterators
// only read dataset state.
package seqset
