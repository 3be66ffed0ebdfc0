package utils

import (
	"fmt"
	"reflect"
)

// Assert panics if any argument is nil. Reserved for programmer invariants
// (e.g. "the GameManager must have finished initialising its tank list
// before the step loop reads it") — never for validating user input or
// untrusted map data, which must fail gracefully via *Error instead.
func Assert(xs ...interface{}) {
	for _, x := range xs {
		if x == nil {
			panic("nil assertion failed")
		}
		v := reflect.ValueOf(x)
		switch v.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
			if v.IsNil() {
				panic(fmt.Errorf("%T is nil", x))
			}
		}
	}
}
