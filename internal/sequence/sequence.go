// Package sequence provides validated nucleotide sequences and their loaders.
package sequence

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/inodb/vibe-orf/internal/fasta"
)

// Origin labels for sequences not read from a file.
const DirectInput = "Direct input"

// Display limits for String.
const (
	displayFull   = 100
	displayPrefix = 50
	displaySuffix = 47
)

// Sequence is an immutable nucleotide string over the alphabet A, T, G, C.
type Sequence struct {
	bases  string
	origin string
}

// New cleans and validates text. Whitespace, ASCII digits, hyphens and
// underscores are removed; the remaining characters must all be A, T, G
// or C in either case. The stored bases are uppercase.
func New(text, origin string) (*Sequence, error) {
	cleaned := clean(text)
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: sequence is empty", ErrInvalidInput)
	}

	for i, r := range cleaned {
		if !isNucleotide(r) {
			return nil, &InvalidNucleotideError{Char: r, Position: i}
		}
	}

	return &Sequence{
		bases:  strings.ToUpper(string(cleaned)),
		origin: origin,
	}, nil
}

// FromString creates a Sequence labelled as direct input.
func FromString(text string) (*Sequence, error) {
	return New(text, DirectInput)
}

// FromFile loads a sequence from a FASTA-style file. Lines starting with
// '>' or ';' are skipped; all other lines are trimmed and concatenated.
func FromFile(path string) (*Sequence, error) {
	if err := CheckFile(path); err != nil {
		return nil, err
	}

	rc, err := fasta.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrIO, path, err)
	}
	defer rc.Close()

	body, err := fasta.ReadBody(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrIO, path, err)
	}

	return New(body, "File: "+path)
}

// CheckFile reports ErrNotFound when path does not exist and ErrIO when it
// cannot be inspected.
func CheckFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: file %s", ErrNotFound, path)
		}
		return fmt.Errorf("%w: stat %s: %v", ErrIO, path, err)
	}
	return nil
}

// SaveFASTA writes the sequence to path as a single FASTA record.
func (s *Sequence) SaveFASTA(path, header string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrIO, path, err)
	}

	w := fasta.NewWriter(f)
	if err := w.Write(header, s.bases); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %v", ErrIO, path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %v", ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrIO, path, err)
	}
	return nil
}

// Bases returns the uppercase sequence text.
func (s *Sequence) Bases() string { return s.bases }

// Origin returns the provenance label.
func (s *Sequence) Origin() string { return s.origin }

// Len returns the number of bases.
func (s *Sequence) Len() int { return len(s.bases) }

// String returns the full sequence when it is short, otherwise a truncated
// view with the total length.
func (s *Sequence) String() string {
	n := len(s.bases)
	if n <= displayFull {
		return s.bases
	}
	p := message.NewPrinter(language.English)
	return s.bases[:displayPrefix] + "..." + s.bases[n-displaySuffix:] + p.Sprintf(" (%d bp)", n)
}

// Preview returns the sequence when it fits in 2n characters, otherwise the
// first and last n bases joined by "...".
func (s *Sequence) Preview(n int) string {
	return Abbreviate(s.bases, n)
}

// Abbreviate shortens text to its first and last n characters joined by
// "..." unless it is at most 2n long. A negative n counts as 0.
func Abbreviate(text string, n int) string {
	n = max(n, 0)
	if len(text) <= 2*n {
		return text
	}
	return text[:n] + "..." + text[len(text)-n:]
}

func clean(text string) []rune {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if isNoise(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// isNoise matches formatting characters stripped before validation.
func isNoise(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v', '-', '_':
		return true
	}
	return r >= '0' && r <= '9'
}

func isNucleotide(r rune) bool {
	switch r {
	case 'A', 'T', 'G', 'C', 'a', 't', 'g', 'c':
		return true
	}
	return false
}
