package reactive

import "reflect"

// ProvideContext stores a value in the current goroutine runtime's
// type-indexed context table: one value per Go type. A later call with the
// same type replaces the earlier value.
//
// Contexts are not reactive; wrap a signal in the provided value when
// downstream readers should observe changes.
func ProvideContext[T any](value T) {
	ctx := getTrackingContext()
	if ctx.contexts == nil {
		ctx.contexts = make(map[reflect.Type]any)
	}
	ctx.contexts[typeKey[T]()] = value
}

// UseContext retrieves the value previously provided for type T.
// The second return is false when no value of that type was provided;
// callers handle absence as normal control flow, not as an error.
func UseContext[T any]() (T, bool) {
	ctx := getTrackingContext()
	if ctx.contexts != nil {
		if v, ok := ctx.contexts[typeKey[T]()]; ok {
			return v.(T), true
		}
	}
	var zero T
	return zero, false
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
