package duckdb

import (
	"go.uber.org/zap"

	"github.com/inodb/vibe-orf/internal/analyze"
)

// Writer stores summaries as they are produced. It implements
// analyze.SummaryWriter.
type Writer struct {
	store  *Store
	logger *zap.Logger
}

// NewWriter creates a writer backed by store.
func NewWriter(store *Store) *Writer {
	return &Writer{store: store, logger: zap.NewNop()}
}

// SetLogger sets the logger for info messages.
func (w *Writer) SetLogger(l *zap.Logger) {
	w.logger = l
}

func (w *Writer) WriteHeader() error { return nil }

func (w *Writer) Write(s *analyze.Summary) error {
	id, err := w.store.WriteSummary(s)
	if err != nil {
		return err
	}
	w.logger.Info("stored analysis",
		zap.String("id", id),
		zap.String("origin", s.Origin),
		zap.Int("genes", len(s.Genes)))
	return nil
}

func (w *Writer) Flush() error { return nil }
