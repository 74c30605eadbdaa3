package result

// Map transforms the Ok value with fn, carrying a Fail across unchanged.
// fn never runs for a Fail.
func Map[T, U any](r Result[T], fn func(v T) U) Result[U] {
	if !r.ok {
		return Fail[U](r.err)
	}
	return Ok(fn(r.value))
}

// FlatMap composes r with a Result-returning fn. A Fail short-circuits:
// fn is not invoked and the failure carries over.
func FlatMap[T, U any](r Result[T], fn func(v T) Result[U]) Result[U] {
	if !r.ok {
		return Fail[U](r.err)
	}
	return fn(r.value)
}

// Match folds the Result to a plain value. Both handlers are mandatory;
// exactly one runs.
func Match[T, U any](r Result[T], onOk func(v T) U, onFail func(err error) U) U {
	if !r.ok {
		return onFail(r.err)
	}
	return onOk(r.value)
}
