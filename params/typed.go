package params

import (
	"fmt"
	"reflect"
)

// Host presents a dialog by name and calls onClosed with its result.
// When and on which goroutine onClosed runs is up to the host.
type Host interface {
	ShowDialog(name string, p *Parameters, onClosed func(Result))
}

// New returns a bag holding only v, keyed by T's name. v is stored as-is.
func New[T any](v T) *Parameters {
	p := NewParameters()
	Set(p, KeyFor[T](), v)
	return p
}

// NewResult returns a confirmed result carrying v keyed by T's name.
func NewResult[T any](v T) Result {
	return Result{Button: OK, Parameters: New(v)}
}

// ShowDialog shows the named dialog with v as its only parameter.
func ShowDialog[T any](h Host, name string, v T, onClosed func(Result)) {
	h.ShowDialog(name, New(v), onClosed)
}

// TryGet reads the value keyed by T's name. A missing key or a value of
// another type reports false with T's zero value.
func TryGet[T any](p *Parameters) (T, bool) {
	v, err := Lookup(p, KeyFor[T]())
	return v, err == nil
}

// TryGetResult is TryGet gated on the result being confirmed. The bag of an
// unconfirmed result is never read.
func TryGetResult[T any](r Result) (T, bool) {
	if !r.Confirmed() {
		var zero T
		return zero, false
	}
	return TryGet[T](r.Parameters)
}

// GetResult is TryGetResult with the failure spelled out: ErrNotConfirmed,
// ErrMissing or a *TypeMismatchError.
func GetResult[T any](r Result) (T, error) {
	if !r.Confirmed() {
		var zero T
		return zero, fmt.Errorf("%w (button %s)", ErrNotConfirmed, r.Button)
	}
	return Lookup(r.Parameters, KeyFor[T]())
}

// Set stores v under k. Like Add, it panics on a nil bag.
func Set[T any](p *Parameters, k Key[T], v T) {
	p.Add(k.name, v)
}

// Lookup reads the value stored under k.
func Lookup[T any](p *Parameters, k Key[T]) (T, error) {
	var zero T
	raw, ok := p.Get(k.name)
	if !ok {
		return zero, fmt.Errorf("%w %q", ErrMissing, k.name)
	}
	if raw == nil {
		// nil was stored; it is a valid T only for nillable types.
		if isNillable(reflect.TypeOf((*T)(nil)).Elem()) {
			return zero, nil
		}
		return zero, &TypeMismatchError{Key: k.name, Want: typeName(reflect.TypeOf((*T)(nil)).Elem()), Got: "nil"}
	}
	v, ok := raw.(T)
	if !ok {
		return zero, &TypeMismatchError{
			Key:  k.name,
			Want: typeName(reflect.TypeOf((*T)(nil)).Elem()),
			Got:  reflect.TypeOf(raw).String(),
		}
	}
	return v, nil
}

func isNillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}
