package reader

// Reader wraps a computation from an environment E to a value A. Nothing
// runs until Run is called.
type Reader[E, A any] struct {
	run func(env E) A
}

func New[E, A any](fn func(env E) A) Reader[E, A] {
	return Reader[E, A]{run: fn}
}

// Ask is the identity Reader: it hands the environment itself back.
func Ask[E any]() Reader[E, E] {
	return New(func(env E) E { return env })
}

// Run feeds env to the wrapped function synchronously and returns its
// result. There is no memoization; every Run re-invokes the function.
func (r Reader[E, A]) Run(env E) A {
	return r.run(env)
}

// Map transforms the produced value in place of its type; use the
// package-level Map to change types.
func (r Reader[E, A]) Map(fn func(a A) A) Reader[E, A] {
	return Map(r, fn)
}

// FlatMap composes with a Reader-producing fn; see the package-level
// FlatMap for the environment threading rule.
func (r Reader[E, A]) FlatMap(fn func(a A) Reader[E, A]) Reader[E, A] {
	return FlatMap(r, fn)
}

// Map builds a Reader whose Run is fn(r.Run(env)).
func Map[E, A, B any](r Reader[E, A], fn func(a A) B) Reader[E, B] {
	return New(func(env E) B {
		return fn(r.run(env))
	})
}

// FlatMap builds a Reader that runs r, hands the value to fn and runs the
// Reader fn returns against the same env. The environment is forwarded
// unchanged, never recomputed.
func FlatMap[E, A, B any](r Reader[E, A], fn func(a A) Reader[E, B]) Reader[E, B] {
	return New(func(env E) B {
		return fn(r.run(env)).run(env)
	})
}

// Local adapts the environment with f before r sees it.
func Local[E, A any](f func(env E) E, r Reader[E, A]) Reader[E, A] {
	return New(func(env E) A {
		return r.run(f(env))
	})
}
