package output

import "github.com/inodb/vibe-orf/internal/analyze"

// MultiWriter duplicates every call to each of its writers, in order.
type MultiWriter struct {
	writers []analyze.SummaryWriter
}

// NewMultiWriter creates a writer fanning out to writers.
func NewMultiWriter(writers ...analyze.SummaryWriter) *MultiWriter {
	return &MultiWriter{writers: writers}
}

func (mw *MultiWriter) WriteHeader() error {
	for _, w := range mw.writers {
		if err := w.WriteHeader(); err != nil {
			return err
		}
	}
	return nil
}

func (mw *MultiWriter) Write(s *analyze.Summary) error {
	for _, w := range mw.writers {
		if err := w.Write(s); err != nil {
			return err
		}
	}
	return nil
}

func (mw *MultiWriter) Flush() error {
	for _, w := range mw.writers {
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}
