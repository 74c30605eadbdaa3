package maybe

// Map transforms a held value with fn, producing an Option of the target
// type. fn never runs for an absent input.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(fn(o.value))
}

// FlatMap feeds a held value to fn and returns fn's Option directly; an
// absent input short-circuits to None without invoking fn.
func FlatMap[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return fn(o.value)
}

// Match folds the Option into a plain value. Both handlers are mandatory;
// the one matching the Option's state supplies the return value.
func Match[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// Slice returns a held slice unchanged and an empty slice for an absent
// Option. It complements Option.ToSlice for element types that are already
// sequences: the held slice is never wrapped into a second level.
func Slice[E any](o Option[[]E]) []E {
	if !o.some {
		return nil
	}
	return o.value
}
