package alphabet

// Punctuation is the fixed set of special characters allowed in alphabets in
// addition to uppercase alphanumerics.
const Punctuation = "()[]{}<>,.|*"

func supportedChar(c byte) bool {
	if c >= 'A' && c <= 'Z' {
		return true
	}
	if c >= '0' && c <= '9' {
		return true
	}
	for i := 0; i < len(Punctuation); i++ {
		if Punctuation[i] == c {
			return true
		}
	}
	return false
}

// Validate checks that symbols is a usable alphabet: non-empty, composed only
// of supported characters, and free of duplicates.
func Validate(symbols string) error {
	if len(symbols) == 0 {
		return ErrEmptyAlphabet
	}
	var seen [256]bool
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if !supportedChar(c) {
			return &UnsupportedCharError{Char: c}
		}
		if seen[c] {
			return &DuplicateCharError{Char: c}
		}
		seen[c] = true
	}
	return nil
}

// indexTable maps each byte to its alphabet position, or -1.
type indexTable [256]int16

func buildIndex(symbols string) indexTable {
	var t indexTable
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		t[symbols[i]] = int16(i)
	}
	return t
}
