package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/maybe3/pkg/maybe"
)

// UnwrapError is the panic payload of Unwrap and UnwrapFail when the
// requested channel is not the one the Result holds. Err carries the
// failure that was present when Unwrap was called on a Fail.
type UnwrapError struct {
	Message string
	Err     error
}

func (e UnwrapError) Error() string {
	return e.Message
}

func (e UnwrapError) Unwrap() error {
	return e.Err
}

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	ok        bool
}

func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of lifts a (value, error) return pair: a nil error yields Ok, anything
// else yields Fail and discards the value.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsFail() bool {
	return !r.ok
}

// Err returns the failure, nil when the Result is Ok.
func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Unwrap returns the Ok value and panics with UnwrapError on a Fail.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(UnwrapError{Message: "Cannot unwrap a failure", Err: r.err})
	}
	return r.value
}

// UnwrapFail returns the failure and panics with UnwrapError on an Ok.
func (r Result[T]) UnwrapFail() error {
	if r.ok {
		panic(UnwrapError{Message: "Cannot unwrap a success"})
	}
	return r.err
}

// UnwrapOr returns the Ok value, or def on a Fail.
func (r Result[T]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// MaybeOk projects the success channel into an Option. The value is lifted
// with maybe.Of, so an Ok holding nil degrades to None like any other nil.
func (r Result[T]) MaybeOk() maybe.Option[T] {
	if !r.ok {
		return maybe.None[T]()
	}
	return maybe.Of(r.value)
}

// MaybeFail projects the failure channel into an Option.
func (r Result[T]) MaybeFail() maybe.Option[error] {
	if r.ok {
		return maybe.None[error]()
	}
	return maybe.Of(r.err)
}

// Map transforms the Ok value in place of its type; use the package-level
// Map to change types.
func (r Result[T]) Map(fn func(v T) T) Result[T] {
	return Map(r, fn)
}

// MapFail transforms the failure, passing Ok through with the same payload.
func (r Result[T]) MapFail(fn func(err error) error) Result[T] {
	if r.ok {
		return Ok(r.value)
	}
	return Fail[T](fn(r.err))
}

// FlatMap composes with a Result-returning fn; a Fail short-circuits
// without invoking fn. Use the package-level FlatMap to change types.
func (r Result[T]) FlatMap(fn func(v T) Result[T]) Result[T] {
	return FlatMap(r, fn)
}

func (r Result[T]) String() string {
	if !r.ok {
		return fmt.Sprintf("Fail(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}
