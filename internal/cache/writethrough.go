package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/MohitAryal/Database-for-social-media/pkg/logging"
	"github.com/MohitAryal/Database-for-social-media/pkg/telemetry"
)

// Op is a cache side effect run by the write-through worker
type Op func(ctx context.Context) error

type queuedOp struct {
	name    string
	fn      Op
	barrier chan struct{}
}

// WriteThrough runs cache side effects on a single worker goroutine, in the
// order they were enqueued. Enqueueing never blocks and errors never reach
// the caller: they are logged and counted.
type WriteThrough struct {
	ops     chan queuedOp
	timeout time.Duration
	logger  *zap.Logger

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewWriteThrough starts a worker with a queue of queueSize operations. Each
// operation gets its own context bounded by timeout.
func NewWriteThrough(queueSize int, timeout time.Duration) *WriteThrough {
	if queueSize <= 0 {
		queueSize = 1
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	w := &WriteThrough{
		ops:     make(chan queuedOp, queueSize),
		timeout: timeout,
		logger:  logging.WithComponent("writethrough"),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w
}

// Enqueue schedules fn. It reports false when the queue is full or closed,
// in which case fn is dropped.
func (w *WriteThrough) Enqueue(name string, fn Op) bool {
	if w == nil {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return false
	}

	select {
	case w.ops <- queuedOp{name: name, fn: fn}:
		return true
	default:
		w.logger.Warn("Cache queue full, dropping operation", zap.String("op", name))
		telemetry.RecordCacheDropped(context.Background(), name)
		return false
	}
}

// Flush waits until every operation enqueued before the call has run
func (w *WriteThrough) Flush() {
	if w == nil {
		return
	}
	barrier := make(chan struct{})

	w.mu.RLock()
	if w.closed {
		w.mu.RUnlock()
		return
	}
	w.ops <- queuedOp{barrier: barrier}
	w.mu.RUnlock()

	<-barrier
}

// Close runs the remaining operations and stops the worker
func (w *WriteThrough) Close() {
	if w == nil {
		return
	}
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.ops)
	}
	w.mu.Unlock()
	<-w.done
}

func (w *WriteThrough) loop() {
	defer close(w.done)
	for op := range w.ops {
		if op.barrier != nil {
			close(op.barrier)
			continue
		}
		w.run(op)
	}
}

func (w *WriteThrough) run(op queuedOp) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return op.fn(ctx)
	}()

	switch {
	case err == nil:
	case errors.Is(err, ErrCacheDisabled):
		// nothing to write to
	default:
		w.logger.Warn("Cache operation failed", zap.String("op", op.name), zap.Error(err))
		telemetry.RecordCacheFailure(ctx, op.name)
	}
}
