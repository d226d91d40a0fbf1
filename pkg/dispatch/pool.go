package dispatch

import (
	"context"
	"sync/atomic"

	"github.com/liftmap/spotquery/pkg/engine"
	"go.uber.org/zap"
)

// Pool round-robins commands over independent dispatchers. because the
// engine keeps no state between calls, instances need no coordination; each
// one still consumes its own queue strictly one command at a time.
type Pool struct {
	dispatchers []*Dispatcher
	next        atomic.Uint64
}

func NewPool(eng *engine.Engine, log *zap.Logger, size, queueSize int) *Pool {
	if size < 1 {
		size = 1
	}
	dispatchers := make([]*Dispatcher, size)
	for i := range dispatchers {
		dispatchers[i] = New(eng, log, queueSize)
	}
	return &Pool{
		dispatchers: dispatchers,
	}
}

// Run starts every dispatcher's consumer loop. returns immediately; the
// loops stop when ctx is cancelled.
func (p *Pool) Run(ctx context.Context) {
	for _, d := range p.dispatchers {
		go d.Run(ctx)
	}
}

func (p *Pool) Dispatch(ctx context.Context, cmd Command) (Response, error) {
	i := p.next.Add(1) % uint64(len(p.dispatchers))
	return p.dispatchers[i].Dispatch(ctx, cmd)
}
