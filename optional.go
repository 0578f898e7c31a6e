package inputprompt

// Optional holds either no value or exactly one value of type T.
//
// It keeps "no default configured" apart from "the default is the zero value
// of T": Some(0) has a value, None[int]() does not.
type Optional[T any] struct {
	value    T
	hasValue bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, hasValue: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// HasValue reports whether o holds a value.
func (o Optional[T]) HasValue() bool {
	return o.hasValue
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.hasValue
}

// Value returns the held value. It panics when o is empty; check HasValue
// first or use Get.
func (o Optional[T]) Value() T {
	if !o.hasValue {
		panic("inputprompt: Value called on empty Optional")
	}
	return o.value
}

// OrZero returns the held value, or the zero value of T when o is empty.
func (o Optional[T]) OrZero() T {
	if !o.hasValue {
		var zero T
		return zero
	}
	return o.value
}
