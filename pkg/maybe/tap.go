package maybe

// TapHandlers carries the optional side-effect callbacks for Tap. A nil
// handler is a no-op.
type TapHandlers[T any] struct {
	OnSome func(v T)
	OnNone func()
}

// Tap invokes the handler matching the Option's state. Handler results are
// discarded and the Option is left untouched.
func (o Option[T]) Tap(h TapHandlers[T]) {
	if o.some {
		if h.OnSome != nil {
			h.OnSome(o.value)
		}
		return
	}
	if h.OnNone != nil {
		h.OnNone()
	}
}

// TapSome invokes fn with the held value when present.
func (o Option[T]) TapSome(fn func(v T)) {
	if o.some && fn != nil {
		fn(o.value)
	}
}

// TapNone invokes fn when the Option is absent.
func (o Option[T]) TapNone(fn func()) {
	if !o.some && fn != nil {
		fn()
	}
}
