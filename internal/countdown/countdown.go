package countdown

import (
	"fmt"
	"sync"
	"time"
)

const (
	DefaultInterval = time.Second

	headerLine = "Preparing to learn... Starting in:"
	doneLine   = "Let's start learning!"
)

// Appender receives countdown lines in order.
type Appender interface {
	Append(line string)
}

type options struct {
	interval time.Duration
}

// Option configures a countdown.
type Option func(*options)

// WithInterval sets the time between lines. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// Start writes the header line to out, then one "N..." line per interval
// from seconds down to 1, then the completion line. The returned channel is
// closed exactly once, right after the completion line is written; the
// ticker is stopped before that and nothing is appended afterwards.
//
// There is no cancellation: the countdown always runs to zero.
func Start(seconds int, out Appender, opts ...Option) <-chan struct{} {
	o := options{interval: DefaultInterval}
	for _, opt := range opts {
		opt(&o)
	}

	done := make(chan struct{})
	out.Append(headerLine)

	go func() {
		ticker := time.NewTicker(o.interval)
		count := seconds
		for range ticker.C {
			if count <= 0 {
				ticker.Stop()
				out.Append(doneLine)
				close(done)
				return
			}
			out.Append(fmt.Sprintf("%d...", count))
			count--
		}
	}()

	return done
}

// Transcript is a concurrency-safe Appender that keeps every line.
type Transcript struct {
	mu    sync.Mutex
	lines []string
}

func (t *Transcript) Append(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, line)
}

// Lines returns a copy of the lines written so far.
func (t *Transcript) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}
