package either

import (
	"errors"
	"fmt"
)

// Construction errors returned by New. The texts are part of the public
// contract.
var (
	ErrBothValues = errors.New("Either cannot have both a left and a right")
	ErrNoValues   = errors.New("Either requires a left or a right")
)

// Either holds exactly one of a left L or a right R. The zero value is a
// Left carrying L's zero value; prefer the constructors. Instances are
// immutable; every transform returns a new Either.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left builds an Either carrying a left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right builds an Either carrying a right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// New validates an optional pair and builds the populated variant. Exactly
// one argument must be non-nil: both yield ErrBothValues, neither yields
// ErrNoValues.
func New[L, R any](left *L, right *R) (Either[L, R], error) {
	switch {
	case left != nil && right != nil:
		return Either[L, R]{}, ErrBothValues
	case left == nil && right == nil:
		return Either[L, R]{}, ErrNoValues
	case left != nil:
		return Left[L, R](*left), nil
	default:
		return Right[L, R](*right), nil
	}
}

// Must unwraps a New result, panicking on a construction error. Exclusivity
// violations are programmer errors, not domain outcomes.
func Must[L, R any](e Either[L, R], err error) Either[L, R] {
	if err != nil {
		panic(err)
	}
	return e
}

// IsLeft reports whether the left channel is populated.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether the right channel is populated.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftOr returns the left value if populated, else def.
func (e Either[L, R]) LeftOr(def L) L {
	if e.isRight {
		return def
	}
	return e.left
}

// RightOr returns the right value if populated, else def.
func (e Either[L, R]) RightOr(def R) R {
	if !e.isRight {
		return def
	}
	return e.right
}

// WrongSideError is the panic payload of MustLeft and MustRight when the
// requested channel is not the populated one.
type WrongSideError struct {
	Message string
}

func (e WrongSideError) Error() string {
	return e.Message
}

// MustLeft returns the left value, panicking with WrongSideError on a Right.
func (e Either[L, R]) MustLeft() L {
	if e.isRight {
		panic(WrongSideError{Message: "Either holds a right, not a left"})
	}
	return e.left
}

// MustRight returns the right value, panicking with WrongSideError on a Left.
func (e Either[L, R]) MustRight() R {
	if !e.isRight {
		panic(WrongSideError{Message: "Either holds a left, not a right"})
	}
	return e.right
}

// Map transforms the right value in place of type; a Left passes through
// rebuilt with the same payload. For a transform to another type use the
// package-level Map.
func (e Either[L, R]) Map(fn func(R) R) Either[L, R] {
	return Map(e, fn)
}

// FlatMap composes a right value with an Either-returning fn of the same
// shape. A Left passes through without invoking fn.
func (e Either[L, R]) FlatMap(fn func(R) Either[L, R]) Either[L, R] {
	return FlatMap(e, fn)
}

// String implements fmt.Stringer for debugging output.
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// TapHandlers carries the optional side-effect callbacks for Tap. A nil
// handler is a no-op.
type TapHandlers[L, R any] struct {
	OnLeft  func(l L)
	OnRight func(r R)
}

// Tap invokes the handler matching the populated channel. Handler results
// are discarded and the Either is left untouched.
func (e Either[L, R]) Tap(h TapHandlers[L, R]) {
	if e.isRight {
		if h.OnRight != nil {
			h.OnRight(e.right)
		}
		return
	}
	if h.OnLeft != nil {
		h.OnLeft(e.left)
	}
}

// Map transforms the right value with fn; a Left input is rebuilt into the
// target type with the same left payload, and fn never runs.
func Map[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if !e.isRight {
		return Left[L, U](e.left)
	}
	return Right[L, U](fn(e.right))
}

// FlatMap feeds the right value to fn and returns fn's Either directly; a
// Left input short-circuits with the same left payload.
func FlatMap[L, R, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	if !e.isRight {
		return Left[L, U](e.left)
	}
	return fn(e.right)
}

// MapLeft transforms the left value with fn; a Right input is rebuilt with
// the same right payload, and fn never runs.
func MapLeft[L, R, M any](e Either[L, R], fn func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M, R](e.right)
	}
	return Left[M, R](fn(e.left))
}

// Match folds the Either into a plain value. Both handlers are mandatory;
// the one matching the populated channel supplies the return value.
func Match[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
