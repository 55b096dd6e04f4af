package settings

import (
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/darkslide/internal/logging"
)

// WriteFunc persists one settings snapshot.
type WriteFunc func(Settings) error

// Persister writes settings snapshots from a single goroutine so two rapid
// changes never interleave partial writes. Submissions made while a write is
// in flight coalesce to the latest snapshot.
type Persister struct {
	write  WriteFunc
	logger hclog.Logger

	mu      sync.Mutex
	pending *Settings
	closed  bool

	wake chan struct{}
	done chan struct{}
}

// NewPersister starts a persister that saves to path.
func NewPersister(path string, logger hclog.Logger) *Persister {
	return NewPersisterFunc(func(s Settings) error {
		return Save(path, s)
	}, logger)
}

// NewPersisterFunc starts a persister around an arbitrary write function.
func NewPersisterFunc(write WriteFunc, logger hclog.Logger) *Persister {
	p := &Persister{
		write:  write,
		logger: logging.OrNull(logger).Named("persist"),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go p.run()
	return p
}

// Submit queues s for writing and returns immediately.
// Submissions after Close are dropped.
func (p *Persister) Submit(s Settings) {
	snapshot := s.Clone()

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.logger.Warn("dropping settings write after close")
		return
	}
	p.pending = &snapshot
	select {
	case p.wake <- struct{}{}:
	default:
	}
	p.mu.Unlock()
}

// Close flushes the pending snapshot and stops the writer.
func (p *Persister) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		<-p.done
		return
	}
	p.closed = true
	close(p.wake)
	p.mu.Unlock()

	<-p.done
}

func (p *Persister) run() {
	defer close(p.done)

	for range p.wake {
		p.flush()
	}
	// wake is closed; write anything submitted just before Close.
	p.flush()
}

func (p *Persister) flush() {
	p.mu.Lock()
	s := p.pending
	p.pending = nil
	p.mu.Unlock()

	if s == nil {
		return
	}

	if err := p.write(*s); err != nil {
		p.logger.Error("failed to save settings", "error", err)
		return
	}
	p.logger.Debug("settings saved")
}
