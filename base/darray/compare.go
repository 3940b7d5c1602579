package darray

import (
	"fmt"
	"io"
	"reflect"

	"github.com/mitchellh/copystructure"
	"golang.org/x/exp/constraints"
)

// Compare is a CompareFunc for ordered types.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ComparePointers returns a CompareFunc that compares the values pointed to.
// Nil pointers are smaller than all others.
func ComparePointers[T constraints.Ordered](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return Compare(*a, *b)
}

// Reversed returns a CompareFunc with the inverse order of compare.
func Reversed[T any](compare CompareFunc[T]) CompareFunc[T] {
	return func(a, b T) int {
		return compare(b, a)
	}
}

// deepCloner is implemented by types that know how to deep copy themselves,
// like Array.
type deepCloner interface {
	deepClone() (any, error)
}

// DeepCopy is a CloneFunc that copies item including everything it references.
// Arrays are cloned recursively with DeepCopy. Other types are copied with
// copystructure, which cannot copy unexported struct fields: such types are
// rejected with ErrInvalidArgument instead of being copied partially.
func DeepCopy[T any](item T) (T, error) {
	var (
		zero   T
		copied any
		err    error
	)

	if cloner, ok := any(item).(deepCloner); ok {
		copied, err = cloner.deepClone()
	} else {
		if t := reflect.TypeOf(item); t != nil && hasUnexportedFields(t, make(map[reflect.Type]struct{})) {
			return zero, fmt.Errorf("%w: cannot deep copy %s, it has unexported fields", ErrInvalidArgument, t)
		}
		copied, err = copystructure.Copy(item)
	}
	if err != nil {
		return zero, err
	}

	typed, ok := copied.(T)
	if !ok {
		return zero, fmt.Errorf("deep copy returned unexpected type %T", copied)
	}
	return typed, nil
}

// hasUnexportedFields reports whether copystructure would silently skip data
// of values of type t. Types with a registered copier are fine.
func hasUnexportedFields(t reflect.Type, seen map[reflect.Type]struct{}) bool {
	if _, ok := seen[t]; ok {
		return false
	}
	seen[t] = struct{}{}

	if _, ok := copystructure.Copiers[t]; ok {
		return false
	}

	switch t.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return hasUnexportedFields(t.Elem(), seen)
	case reflect.Map:
		return hasUnexportedFields(t.Key(), seen) || hasUnexportedFields(t.Elem(), seen)
	case reflect.Struct:
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() || hasUnexportedFields(field.Type, seen) {
				return true
			}
		}
	}
	return false
}

// ReleaseCloser is a ReleaseFunc that closes the item.
func ReleaseCloser[T io.Closer](item T) error {
	return item.Close()
}
