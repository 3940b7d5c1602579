package darray

import (
	"fmt"
	"math"
)

// minCapacity is the capacity of the first allocated buffer.
const minCapacity = 4

// ReleaseFunc reclaims the resources of an item that leaves an Array.
type ReleaseFunc[T any] func(item T) error

// CompareFunc compares a and b. It must return a negative number if a is
// smaller, zero if both are equal and a positive number if a is bigger.
// Search and Unique only rely on the zero result.
type CompareFunc[T any] func(a, b T) int

// CloneFunc returns an independent deep copy of item.
type CloneFunc[T any] func(item T) (T, error)

// Array is a growable sequence that owns the items it holds.
// The zero value is an empty Array without a release function.
// A nil *Array behaves like an empty Array that cannot be changed.
type Array[T any] struct {
	buf    []T
	length int

	release ReleaseFunc[T]

	visiting  int
	destroyed bool
}

// New returns an empty Array. The release function is called for every item
// that leaves the Array and may be nil.
func New[T any](release ReleaseFunc[T]) *Array[T] {
	return &Array[T]{
		release: release,
	}
}

// NewWithCapacity returns an empty Array with room for capacity items.
func NewWithCapacity[T any](capacity int, release ReleaseFunc[T]) (*Array[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, capacity)
	}

	a := New(release)
	if capacity > 0 {
		buf, err := allocate[T](capacity)
		if err != nil {
			return nil, err
		}
		a.buf = buf
	}
	return a, nil
}

// Len returns the amount of items in the Array.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.length
}

// Cap returns the amount of items the Array can hold without growing.
func (a *Array[T]) Cap() int {
	if a == nil {
		return 0
	}
	return len(a.buf)
}

// Get returns the item at index.
func (a *Array[T]) Get(index int) (item T, err error) {
	if a == nil {
		return item, fmt.Errorf("%w: index %d, nil array", ErrIndexOutOfRange, index)
	}
	if a.destroyed {
		return item, ErrDestroyed
	}
	if index < 0 || index >= a.length {
		return item, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, a.length)
	}
	return a.buf[index], nil
}

// Reserve makes sure that n more items fit into the Array without growing.
func (a *Array[T]) Reserve(n int) error {
	if err := a.checkMutable(); err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: negative reserve %d", ErrInvalidArgument, n)
	}
	return a.grow(n)
}

// grow makes room for n more items. The Array is not changed on failure.
func (a *Array[T]) grow(n int) error {
	if n <= len(a.buf)-a.length {
		return nil
	}
	if a.length > math.MaxInt-n {
		return fmt.Errorf("%w: %d + %d items exceed the addressable size", ErrOutOfMemory, a.length, n)
	}
	needed := a.length + n

	// Double, but at least fit what is needed.
	capacity := minCapacity
	if len(a.buf) > 0 {
		capacity = len(a.buf)
		if capacity <= math.MaxInt/2 {
			capacity *= 2
		} else {
			capacity = math.MaxInt
		}
	}
	if capacity < needed {
		capacity = needed
	}

	buf, err := allocate[T](capacity)
	if err != nil {
		return err
	}
	copy(buf, a.buf[:a.length])
	a.buf = buf
	return nil
}

// allocate returns a new buffer and converts an allocation panic of the
// runtime into an error.
func allocate[T any](capacity int) (buf []T, err error) {
	defer func() {
		if panicVal := recover(); panicVal != nil {
			buf = nil
			err = fmt.Errorf("%w: capacity %d: %v", ErrOutOfMemory, capacity, panicVal)
		}
	}()

	return make([]T, capacity), nil
}

// checkMutable returns an error if the structure of the Array may not be
// changed right now.
func (a *Array[T]) checkMutable() error {
	switch {
	case a == nil:
		return fmt.Errorf("%w: nil array", ErrInvalidArgument)
	case a.destroyed:
		return ErrDestroyed
	case a.visiting > 0:
		return ErrTraversal
	}
	return nil
}
