package stegmark

import (
	"fmt"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchItem is one carrier in a batch, identified by a stable key (page
// index, filename) so the caller can reinsert results in original order.
type BatchItem struct {
	Key     string
	Carrier image.Image
}

// BatchResult is the per-item outcome: a successful embed result or the
// error that failed this item. A failed item never aborts the batch.
type BatchResult struct {
	Key    string
	Result *EmbedResult
	Err    error
}

// BatchReport aggregates a whole batch. Results preserves the input order.
type BatchReport struct {
	Results  []BatchResult
	Embedded int
	Failed   int
}

// Summary returns a one-line account of the batch outcome.
func (r *BatchReport) Summary() string {
	return fmt.Sprintf("%d of %d images watermarked; %d failed",
		r.Embedded, len(r.Results), r.Failed)
}

// EmbedAll embeds the same payload into every carrier in items, processing
// them concurrently. Each embed is an independent, atomic transform, so a
// per-item failure (say, a page too small for the payload) is recorded and
// the remaining items continue. Options.Workers bounds the concurrency;
// zero means one worker per CPU.
func EmbedAll(items []BatchItem, payload image.Image, o *Options) *BatchReport {
	if o == nil {
		o = DefaultOptions()
	}
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	report := &BatchReport{Results: make([]BatchResult, len(items))}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			res, err := Embed(item.Carrier, payload, o)
			if err != nil {
				err = fmt.Errorf("image %q: %w", item.Key, err)
			}
			report.Results[i] = BatchResult{Key: item.Key, Result: res, Err: err}
			return nil
		})
	}
	g.Wait()

	for i := range report.Results {
		if report.Results[i].Err != nil {
			report.Failed++
		} else {
			report.Embedded++
		}
	}

	return report
}
