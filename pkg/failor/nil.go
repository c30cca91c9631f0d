package failor

import (
	"fmt"
	"reflect"
)

// IsNil reports whether v is nil, including typed nil pointers, maps,
// slices, funcs and channels hidden behind an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// panicError turns a recovered panic value into an error usable as a
// failure cause.
func panicError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", recovered)
}
