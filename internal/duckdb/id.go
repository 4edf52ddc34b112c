package duckdb

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// SequenceID returns the content-derived key for a sequence. Identical bases
// map to the same ID regardless of where they were loaded from.
func SequenceID(bases string) string {
	return fmt.Sprintf("%016x", xxh3.HashString(bases))
}
