package analyze

import (
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/inodb/vibe-orf/internal/sequence"
)

// WorkItem is one input to analyze. When Sequence is nil the worker loads Path.
type WorkItem struct {
	Seq      int
	Path     string
	Sequence *sequence.Sequence
}

// WorkResult holds the outcome for a single input.
type WorkResult struct {
	Seq     int
	Path    string
	Summary *Summary
	Err     error
}

// ParallelAnalyze analyzes work items using a pool of workers.
// Results are sent to the returned channel in arrival order (not sequence order).
// Use OrderedCollect to consume results in sequence-number order.
// If workers is 0, runtime.NumCPU() is used.
func ParallelAnalyze(items <-chan WorkItem, workers int, logger *zap.Logger) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				results <- analyzeItem(item, logger)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

func analyzeItem(item WorkItem, logger *zap.Logger) WorkResult {
	r := WorkResult{Seq: item.Seq, Path: item.Path}

	seq := item.Sequence
	if seq == nil {
		var err error
		seq, err = sequence.FromFile(item.Path)
		if err != nil {
			r.Err = err
			return r
		}
	}

	a := ForSequence(seq)
	a.SetLogger(logger)
	r.Summary = a.Summarize()
	return r
}

// OrderedCollect calls fn for each result in sequence-number order.
// It buffers out-of-order results in a pending map and emits them
// as soon as the next expected sequence number is available.
// Blocks until the results channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}

// AnalyzeAll analyzes items on a worker pool and writes the summaries to
// writer in input order. A load failure stops the run and is returned unwrapped.
func AnalyzeAll(items []WorkItem, writer SummaryWriter, workers int, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	ch := make(chan WorkItem, len(items))
	for i, item := range items {
		item.Seq = i
		ch <- item
	}
	close(ch)

	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	results := ParallelAnalyze(ch, workers, logger)
	if err := OrderedCollect(results, func(r WorkResult) error {
		if r.Err != nil {
			return r.Err
		}
		logger.Info("analyzed sequence",
			zap.String("origin", r.Summary.Origin),
			zap.Int("length", r.Summary.Length),
			zap.Int("genes", len(r.Summary.Genes)))
		if err := writer.Write(r.Summary); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}

	return writer.Flush()
}
