// Package alphabet provides one-hot encoding of character sequences over
// user-defined alphabets.
//
// The package defines two codecs:
//
//   - [Encoder]: Maps a sequence string over a single alphabet to and from a
//     one-hot [Matrix] (one row per position, one column per symbol).
//   - [Joiner]: Combines a primary (sequence) and a secondary (structure)
//     alphabet into a joint alphabet of size |primary|x|secondary| and encodes
//     position-paired strings, or a sequence paired with a position-weight
//     matrix, into a single one-hot stream.
//
// Alphabets may contain uppercase alphanumeric characters plus the punctuation
// set "()[]{}<>,.|*". Construction fails fast on empty alphabets, unsupported
// or duplicate characters, and (for joint alphabets) overlapping character
// sets.
package alphabet
