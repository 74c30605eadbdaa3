package maybe

import "reflect"

// IsNil reports whether i is nil in any representation: untyped nil or a
// nil pointer, slice, map, chan, func or interface boxed into a non-nil
// interface value. This is the absence rule used by Of.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch rv := reflect.ValueOf(i); rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
