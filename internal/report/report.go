// Package report provides the line-oriented sink the demonstrations write to.
package report

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Reporter accepts one formatted line of human-readable text.
type Reporter interface {
	Report(line string)
}

// Func adapts a plain function to Reporter.
type Func func(line string)

// Report calls f(line).
func (f Func) Report(line string) { f(line) }

// Discard drops every line.
var Discard Reporter = Func(func(string) {})

// Reportf formats according to format and reports the result to r.
func Reportf(r Reporter, format string, args ...any) {
	r.Report(fmt.Sprintf(format, args...))
}

// OrDiscard returns r, or Discard when r is nil.
func OrDiscard(r Reporter) Reporter {
	if r == nil {
		return Discard
	}
	return r
}

type zapReporter struct {
	logger *zap.Logger
}

// NewZapReporter returns a Reporter that logs each line at Info level.
//
// Precondition: logger must be non-nil.
func NewZapReporter(logger *zap.Logger) Reporter {
	if logger == nil {
		panic("report.NewZapReporter: precondition violated: logger must be non-nil")
	}
	return &zapReporter{logger: logger}
}

func (z *zapReporter) Report(line string) {
	z.logger.Info("report", zap.String("line", line))
}

// Recorder keeps every reported line in memory.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

// Report appends line.
func (r *Recorder) Report(line string) {
	r.mu.Lock()
	r.lines = append(r.lines, line)
	r.mu.Unlock()
}

// Lines returns a copy of the lines reported so far, oldest first.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Tee returns a Reporter forwarding every line to each of rs in order.
func Tee(rs ...Reporter) Reporter {
	return Func(func(line string) {
		for _, r := range rs {
			r.Report(line)
		}
	})
}
