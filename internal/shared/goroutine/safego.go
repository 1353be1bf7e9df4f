// Package goroutine launches background work that must not take the process down.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/orris-inc/fibgate/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine and returns a channel that is closed when fn
// returns. A panic inside fn is logged with its stack and does not propagate.
func SafeGo(ctx context.Context, log logger.Interface, name string, fn func(ctx context.Context)) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn(ctx)
	}()
	return done
}
