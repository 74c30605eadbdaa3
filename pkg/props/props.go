package props

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/ib-77/maybe3/pkg/maybe"
)

// Path is an ordered list of segments parsed from a dot-delimited string.
type Path struct {
	segments []string
}

// Parse splits path on ".". A single-segment path is a traversal of
// length one.
func Parse(path string) Path {
	return Path{segments: strings.Split(path, ".")}
}

func (p Path) String() string {
	return strings.Join(p.segments, ".")
}

// Resolve walks root segment by segment. A nil value or a missing read at
// any step stops the walk with None; after the last segment the resolved
// value is lifted with maybe.Of. Resolve is pure and re-runnable against
// any root.
func (p Path) Resolve(root any) maybe.Option[any] {
	current := root
	for _, seg := range p.segments {
		if maybe.IsNil(current) {
			return maybe.None[any]()
		}
		next, found := read(current, seg)
		if !found {
			return maybe.None[any]()
		}
		current = next
	}
	return maybe.Of(current)
}

// Select returns the path's resolver as a reusable function, the
// point-free companion of Get.
func Select(path string) func(root any) maybe.Option[any] {
	p := Parse(path)
	return func(root any) maybe.Option[any] {
		return p.Resolve(root)
	}
}

// Get resolves path against root in one call.
func Get(root any, path string) maybe.Option[any] {
	return Parse(path).Resolve(root)
}

// As projects a resolved value onto a concrete type. A value of the exact
// type passes through a plain assertion; map-shaped values are decoded into
// struct or map targets with mapstructure. A value that neither asserts nor
// decodes is None.
func As[T any](o maybe.Option[any]) maybe.Option[T] {
	v, ok := o.Get()
	if !ok {
		return maybe.None[T]()
	}
	if t, direct := v.(T); direct {
		return maybe.Some(t)
	}
	var t T
	if err := mapstructure.Decode(v, &t); err != nil {
		return maybe.None[T]()
	}
	return maybe.Some(t)
}

// read fetches one segment from current: by index when current is a
// sequence and seg is a non-negative integer, by key for string-keyed
// maps, by exported field name for structs (exact match first, then
// case-insensitive).
func read(current any, seg string) (any, bool) {
	v := reflect.ValueOf(current)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= v.Len() {
			return nil, false
		}
		return v.Index(i).Interface(), true

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		elem := v.MapIndex(reflect.ValueOf(seg).Convert(v.Type().Key()))
		if !elem.IsValid() {
			return nil, false
		}
		return elem.Interface(), true

	case reflect.Struct:
		f := v.FieldByName(seg)
		if !f.IsValid() {
			f = v.FieldByNameFunc(func(name string) bool {
				return strings.EqualFold(name, seg)
			})
		}
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true

	default:
		return nil, false
	}
}
