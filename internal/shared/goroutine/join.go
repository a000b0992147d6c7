// Package goroutine joins concurrent sibling tasks with panic recovery.
package goroutine

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"golang.org/x/sync/errgroup"

	"skylink/internal/shared/logger"
)

// Join runs sibling fetches concurrently and waits for all of them. A
// failing task never cancels the others; every failure is logged under
// the task name and all of them are returned joined.
type Join struct {
	log  logger.Interface
	eg   errgroup.Group
	mu   sync.Mutex
	errs []error
}

// NewJoin creates an empty Join.
func NewJoin(log logger.Interface) *Join {
	return &Join{log: log}
}

// Go starts fn. It must not be called after Wait.
func (j *Join) Go(name string, fn func() error) {
	j.eg.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				j.log.Errorw("fetch panicked",
					"fetch", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
				j.record(fmt.Errorf("%s: panic: %v", name, r))
			}
		}()
		if err := fn(); err != nil {
			j.log.Errorw("fetch failed", "fetch", name, "error", err)
			j.record(fmt.Errorf("%s: %w", name, err))
		}
		return nil
	})
}

// Wait blocks until every task returned.
func (j *Join) Wait() error {
	_ = j.eg.Wait()
	j.mu.Lock()
	defer j.mu.Unlock()
	return errors.Join(j.errs...)
}

func (j *Join) record(err error) {
	j.mu.Lock()
	j.errs = append(j.errs, err)
	j.mu.Unlock()
}
