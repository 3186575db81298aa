// Package feature stores auxiliary per-record features alongside the encoded
// sequence data.
//
// Features are added in blocks, one value per record, either numeric
// (optionally z-score standardized) or categorical (one-hot encoded over the
// observed categories, at most 256). Blocks are concatenated per record in
// the order they were added.
package feature
