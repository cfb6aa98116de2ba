package service

import (
	"sync"

	"github.com/okian/feedcodec/internal/domain/roundtrip"
)

// maxReportFailures caps the failures a Report carries; the store keeps all.
const maxReportFailures = 100

// Report summarizes one Validate run.
type Report struct {
	Source string

	// Checked counts records handed to the checker.
	Checked      int
	OK           int
	Unhandled    int
	DecodeErrors int
	Mismatches   int

	Duplicates  int
	ParseErrors int

	// Stopped is set when the run ended at its first failure.
	Stopped bool

	// Failures lists the first failed outcomes in completion order.
	Failures []roundtrip.Outcome
}

// Passed reports whether every record was read and none failed.
func (r *Report) Passed() bool {
	return r.DecodeErrors == 0 && r.Mismatches == 0 && r.ParseErrors == 0
}

func (r *Report) add(out roundtrip.Outcome) { //nolint:gocritic // hugeParam: Outcome is a value type
	r.Checked++
	switch out.Status {
	case roundtrip.StatusOK:
		r.OK++
	case roundtrip.StatusUnhandled:
		r.Unhandled++
	case roundtrip.StatusDecodeError:
		r.DecodeErrors++
	case roundtrip.StatusMismatch:
		r.Mismatches++
	}
	if out.Failed() && len(r.Failures) < maxReportFailures {
		r.Failures = append(r.Failures, out)
	}
}

// run tracks the records one Validate call has in flight.
type run struct {
	mu            sync.Mutex
	report        Report
	pending       int
	sourceDone    bool
	idle          chan struct{}
	stopOnFailure bool
	stop          func()
}

func newRun(source string, stopOnFailure bool, stop func()) *run {
	return &run{
		report:        Report{Source: source},
		idle:          make(chan struct{}),
		stopOnFailure: stopOnFailure,
		stop:          stop,
	}
}

func (r *run) enqueued() {
	r.mu.Lock()
	r.pending++
	r.mu.Unlock()
}

// dropped undoes enqueued for a record that never reached the queue.
func (r *run) dropped() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending--
	r.signal()
}

func (r *run) duplicate() {
	r.mu.Lock()
	r.report.Duplicates++
	r.mu.Unlock()
}

func (r *run) parseError() {
	r.mu.Lock()
	r.report.ParseErrors++
	stop := r.stopOnFailure && !r.report.Stopped
	if stop {
		r.report.Stopped = true
	}
	r.mu.Unlock()
	if stop {
		r.stop()
	}
}

func (r *run) complete(out roundtrip.Outcome) { //nolint:gocritic // hugeParam: Outcome is a value type
	r.mu.Lock()
	r.report.add(out)
	r.pending--
	stop := out.Failed() && r.stopOnFailure && !r.report.Stopped
	if stop {
		r.report.Stopped = true
	}
	r.signal()
	r.mu.Unlock()
	if stop {
		r.stop()
	}
}

// finish marks the source exhausted.
func (r *run) finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sourceDone = true
	r.signal()
}

// signal closes idle once the source is exhausted and nothing is pending.
// Must be called with r.mu held.
func (r *run) signal() {
	if r.sourceDone && r.pending == 0 {
		select {
		case <-r.idle:
		default:
			close(r.idle)
		}
	}
}

func (r *run) snapshot() Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep := r.report
	rep.Failures = append([]roundtrip.Outcome(nil), r.report.Failures...)
	return rep
}
