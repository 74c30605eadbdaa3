package result

// TapHandlers carries optional side-effect callbacks for Tap. Any field may
// be left nil; a missing handler is a no-op.
type TapHandlers[T any] struct {
	OnOk   func(v T)
	OnFail func(err error)
}

// Tap invokes the handler matching the Result's variant, if set. Handler
// return values do not exist; Tap never changes the Result.
func (r Result[T]) Tap(h TapHandlers[T]) {
	if r.ok {
		if h.OnOk != nil {
			h.OnOk(r.value)
		}
		return
	}
	if h.OnFail != nil {
		h.OnFail(r.err)
	}
}

// TapOk invokes fn with the value when the Result is Ok.
func (r Result[T]) TapOk(fn func(v T)) {
	if r.ok && fn != nil {
		fn(r.value)
	}
}

// TapFail invokes fn with the failure when the Result is Fail.
func (r Result[T]) TapFail(fn func(err error)) {
	if !r.ok && fn != nil {
		fn(r.err)
	}
}
