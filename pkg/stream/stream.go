package stream

import (
	"context"
	"sync"

	"github.com/ib-77/maybe3/pkg/maybe"
	"github.com/ib-77/maybe3/pkg/result"
)

// EmitHandlers carries optional callbacks observed while EmitResults feeds
// its channel. Any field may be left nil; a missing handler is a no-op.
type EmitHandlers[T any] struct {
	OnStartFail func(ctx context.Context, skipped []result.Result[T])
	OnSend      func(ctx context.Context, r result.Result[T])
	OnBreak     func(ctx context.Context, rest []result.Result[T])
}

// Emit projects o onto a channel: a present value is sent and the channel
// closed, an absent Option closes it with zero emissions. Cancelling ctx
// abandons an unconsumed send.
func Emit[T any](ctx context.Context, o maybe.Option[T]) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		v, ok := o.Get()
		if !ok || ctx.Err() != nil {
			return
		}

		select {
		case out <- v:
		case <-ctx.Done():
		}
	}()

	return out
}

// EmitAll sends the held values of opts in order, skipping absent ones.
func EmitAll[T any](ctx context.Context, opts ...maybe.Option[T]) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		for _, o := range opts {
			if ctx.Err() != nil {
				return
			}

			v, ok := o.Get()
			if !ok {
				continue
			}

			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// EmitResults feeds results into a channel in order, Ok and Fail alike.
// OnSend runs after each delivered value; on cancellation OnBreak receives
// the undelivered rest, or OnStartFail everything when ctx was already
// cancelled at the start.
func EmitResults[T any](ctx context.Context, handlers EmitHandlers[T], results ...result.Result[T]) <-chan result.Result[T] {
	out := make(chan result.Result[T])

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, results)
			}
			return
		}

		for i, r := range results {
			select {
			case out <- r:
				if handlers.OnSend != nil {
					handlers.OnSend(ctx, r)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, results[i:])
				}
				return
			}
		}
	}()

	return out
}

// First receives one value and lifts it into an Option; a closed channel or
// a cancelled ctx yields None.
func First[T any](ctx context.Context, out <-chan T) maybe.Option[T] {
	res := maybe.None[T]()
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		select {
		case v, ok := <-out:
			if !ok {
				return
			}
			res = maybe.Some(v)
		case <-ctx.Done():
		}
	}()

	wg.Wait()
	return res
}

// Collect drains out into a slice until the channel closes or ctx is
// cancelled.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}
