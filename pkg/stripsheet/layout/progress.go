package layout

import (
	"context"
	"math"
	"runtime"
)

// DefaultReportEvery is the number of records between progress reports.
const DefaultReportEvery = 20

// ProgressFunc receives a completion percentage in [0, 100].
type ProgressFunc func(percent int)

// Reporter counts processed records, reports progress every few records and
// yields to the scheduler at each report. Not safe for concurrent use.
type Reporter struct {
	total int
	every int
	done  int
	fn    ProgressFunc
}

// NewReporter creates a reporter for total records. fn may be nil.
func NewReporter(total int, fn ProgressFunc) *Reporter {
	return &Reporter{total: total, every: DefaultReportEvery, fn: fn}
}

// Step marks one record as processed. Every r.every records it reports the
// percentage and yields; the context is checked at that point and its error
// returned so a caller can stop between records.
func (r *Reporter) Step(ctx context.Context) error {
	r.done++
	if r.done%r.every != 0 {
		return nil
	}
	if r.fn != nil && r.done < r.total {
		r.fn(r.percent())
	}
	runtime.Gosched()
	return ctx.Err()
}

// Finish emits the final 100%.
func (r *Reporter) Finish() {
	if r.fn != nil {
		r.fn(100)
	}
}

// Done returns the number of processed records.
func (r *Reporter) Done() int {
	return r.done
}

// percent stays below 100 until Finish.
func (r *Reporter) percent() int {
	if r.total <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(r.done) / float64(r.total)))
	return min(p, 99)
}
