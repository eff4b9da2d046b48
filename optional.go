package autorace

import (
	"encoding/json"
	"fmt"
)

// Optional holds a value that may be absent. The zero value is absent.
//
// Extracted fields use Optional instead of sentinel values so that a missing
// or malformed field is distinguishable from a legitimate zero.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsPresent reports whether o holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.ok
}

// OrElse returns the value, or fallback when absent.
func (o Optional[T]) OrElse(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}

// String formats the value with fmt, or returns "" when absent.
func (o Optional[T]) String() string {
	if !o.ok {
		return ""
	}
	return fmt.Sprint(o.value)
}

// MarshalJSON encodes an absent value as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as absent.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// MarshalYAML encodes an absent value as null.
func (o Optional[T]) MarshalYAML() (any, error) {
	if !o.ok {
		return nil, nil
	}
	return o.value, nil
}

// AndThen applies f to the value of o when present. The result is absent
// when o is absent or f returns absent.
func AndThen[T, U any](o Optional[T], f func(T) Optional[U]) Optional[U] {
	v, ok := o.Get()
	if !ok {
		return None[U]()
	}
	return f(v)
}

// Map applies f to the value of o when present.
func Map[T, U any](o Optional[T], f func(T) U) Optional[U] {
	v, ok := o.Get()
	if !ok {
		return None[U]()
	}
	return Some(f(v))
}
