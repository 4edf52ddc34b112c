package main

import (
	"fmt"
	"io"

	"github.com/inodb/vibe-orf/internal/fasta"
	"github.com/inodb/vibe-orf/internal/sequence"
)

// stdinPath selects standard input as the sequence source.
const stdinPath = "-"

// loadSequence reads the sequence given by --sequence text, a file path, or
// stdin. Exactly one source must be given.
func loadSequence(text string, args []string, stdin io.Reader) (*sequence.Sequence, error) {
	switch {
	case text != "" && len(args) > 0:
		return nil, usageErrorf("give either --sequence or an input file, not both")
	case text != "":
		return sequence.FromString(text)
	case len(args) == 0:
		return nil, usageErrorf("input file or --sequence required")
	case len(args) > 1:
		return nil, usageErrorf("expected one input file, got %d", len(args))
	case args[0] == stdinPath:
		return readStdin(stdin)
	default:
		return sequence.FromFile(args[0])
	}
}

func readStdin(r io.Reader) (*sequence.Sequence, error) {
	body, err := fasta.ReadBody(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read stdin: %v", sequence.ErrIO, err)
	}
	return sequence.New(body, "stdin")
}
