// Package testutil provides seeded fixture generators for tests: random
// sequences over an alphabet and FASTA-formatted file content in the
// single-line variant the loader consumes.
package testutil
