package maybe

import (
	"fmt"
)

// EmptyValueError is the panic payload of MustValue and Expect.
type EmptyValueError struct {
	// Message overrides the default text when non-empty.
	Message string
}

func (e EmptyValueError) Error() string {
	if e.Message == "" {
		return "empty value"
	}
	return e.Message
}

// Option holds at most one value of type T. The zero value is None, so an
// Option can be declared or embedded without initialization. Instances are
// immutable; every transform returns a new Option.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps v into a present Option. It is the unit of the package and
// performs no nil inspection; use Of for values that may be nil.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns the absent Option of type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Of lifts v into an Option, treating nil as absent: untyped nil and nil
// pointers, slices, maps, chans, funcs and interfaces become None. Any other
// value is present, including 0, "" and false.
func Of[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// FromPtr lifts a pointer into an Option over its element; nil is None.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOk lifts Go's comma-ok pair, as returned by map reads and type
// assertions, into an Option.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// IsSome reports whether a value is held. It is a pure query: repeated calls
// observe the same state and cause no side effects.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is absent.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// ValueOr returns the held value if present, else def.
func (o Option[T]) ValueOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// ValueOrCompute returns the held value if present, else the supplier's
// result. The supplier runs only for an absent Option, so expensive defaults
// stay lazy.
func (o Option[T]) ValueOrCompute(supplier func() T) T {
	if o.some {
		return o.value
	}
	return supplier()
}

// Get returns the held value together with a presence flag.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// ToPtr returns a pointer to a copy of the held value, or nil when absent.
func (o Option[T]) ToPtr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// MustValue returns the held value or panics with an EmptyValueError.
func (o Option[T]) MustValue() T {
	if !o.some {
		panic(EmptyValueError{})
	}
	return o.value
}

// Expect is MustValue with a caller-supplied panic message.
func (o Option[T]) Expect(message string) T {
	if !o.some {
		panic(EmptyValueError{Message: message})
	}
	return o.value
}

// ToSlice returns a one-element slice for a present value and an empty slice
// for an absent one. An Option that already holds a slice is unwrapped by
// the package-level Slice instead, which never wraps a second level.
func (o Option[T]) ToSlice() []T {
	if !o.some {
		return nil
	}
	return []T{o.value}
}

// Filter keeps a present value that satisfies pred and degrades everything
// else to None. The predicate never runs for an absent Option.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// Map transforms a held value in place of type. For a transform to another
// type use the package-level Map.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	if !o.some {
		return None[T]()
	}
	return Some(fn(o.value))
}

// FlatMap feeds a held value to fn and returns fn's Option as-is; an absent
// receiver short-circuits to None without invoking fn.
func (o Option[T]) FlatMap(fn func(T) Option[T]) Option[T] {
	if !o.some {
		return None[T]()
	}
	return fn(o.value)
}

// String implements fmt.Stringer for debugging output.
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
