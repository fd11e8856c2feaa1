package params

import "reflect"

// Key addresses a value of type T in a Parameters bag.
type Key[T any] struct {
	name string
}

// KeyFor returns the conventional key for T: the declared name of the type.
// Unnamed types such as []string or *Foo fall back to their type string.
func KeyFor[T any]() Key[T] {
	return Key[T]{name: typeName(reflect.TypeOf((*T)(nil)).Elem())}
}

// NewKey returns a key with an explicit name. Use it when a dialog needs
// two values of the same type.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

func (k Key[T]) Name() string { return k.name }

func (k Key[T]) String() string { return k.name }

func typeName(t reflect.Type) string {
	if n := t.Name(); n != "" {
		return n
	}
	return t.String()
}
