// Package source abstracts where input text files (FASTA and feature files)
// are read from.
//
// The package defines one key interface:
//
//   - [Opener]: Opens a named input and returns a plain-text read handle.
//
// # Implementations
//
//   - [Local]: Reads from the local filesystem with transparent gzip
//     decompression (detected by magic bytes).
//   - [Memory]: In-memory implementation for tests.
//   - [S3]: Reads objects from Amazon S3.
//   - [MinIO]: Reads objects from MinIO and other S3-compatible stores.
//
// [RateLimited] wraps any Opener with byte-rate throttling, for polite bulk
// pulls from shared object stores.
package source
