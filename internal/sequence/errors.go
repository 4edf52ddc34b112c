package sequence

import (
	"errors"
	"fmt"
)

// Error kinds returned by Sequence construction and persistence.
// Match them with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrIO           = errors.New("i/o error")
)

// InvalidNucleotideError reports a character outside the A/T/G/C alphabet.
// Position is the 0-based index in the cleaned text.
type InvalidNucleotideError struct {
	Char     rune
	Position int
}

func (e *InvalidNucleotideError) Error() string {
	return fmt.Sprintf("invalid nucleotide %q at position %d: only A, T, G, C are allowed", e.Char, e.Position)
}

// Unwrap makes errors.Is(err, ErrInvalidInput) hold.
func (e *InvalidNucleotideError) Unwrap() error {
	return ErrInvalidInput
}
