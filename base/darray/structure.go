package darray

import (
	"fmt"
)

// ExtendAt moves all items of other into the Array, starting at index, in the
// order they have in other. The items following index are moved back.
//
// Ownership of the items moves along: other is empty afterwards, but keeps its
// capacity and release function. No release function is called.
func (a *Array[T]) ExtendAt(index int, other *Array[T]) error {
	if err := a.checkMutable(); err != nil {
		return err
	}
	if other == nil {
		return nil
	}
	if other == a {
		return fmt.Errorf("%w: cannot extend array with itself", ErrInvalidArgument)
	}
	if err := other.checkMutable(); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if index < 0 || index > a.length {
		return fmt.Errorf("%w: extend at %d, length %d", ErrIndexOutOfRange, index, a.length)
	}

	n := other.length
	if n == 0 {
		return nil
	}
	if err := a.grow(n); err != nil {
		return err
	}

	copy(a.buf[index+n:a.length+n], a.buf[index:a.length])
	copy(a.buf[index:index+n], other.buf[:n])
	a.length += n

	clear(other.buf[:n])
	other.length = 0
	return nil
}

// Extend moves all items of other to the end of the Array.
// See ExtendAt for details.
func (a *Array[T]) Extend(other *Array[T]) error {
	return a.ExtendAt(a.Len(), other)
}

// Reverse reverses the order of all items.
func (a *Array[T]) Reverse() error {
	if err := a.checkMutable(); err != nil {
		return err
	}

	for i, j := 0, a.length-1; i < j; i, j = i+1, j-1 {
		a.buf[i], a.buf[j] = a.buf[j], a.buf[i]
	}
	return nil
}

// Unique removes and releases every item that is equal to the item retained
// before it. Only adjacent duplicates are removed; sort first to remove all.
func (a *Array[T]) Unique(compare CompareFunc[T]) error {
	if err := a.checkMutable(); err != nil {
		return err
	}
	if a.length < 2 {
		return nil
	}

	kept, dropped := a.compact(compare)
	clear(a.buf[kept:a.length])
	a.length = kept

	return a.releaseAll(dropped)
}

// compact moves every item that is not equal to the previously kept one to
// the front and returns the amount of kept items and the dropped items.
func (a *Array[T]) compact(compare CompareFunc[T]) (kept int, dropped []T) {
	a.visiting++
	defer func() { a.visiting-- }()

	kept = 1
	for i := 1; i < a.length; i++ {
		if compare(a.buf[kept-1], a.buf[i]) == 0 {
			dropped = append(dropped, a.buf[i])
			continue
		}
		a.buf[kept] = a.buf[i]
		kept++
	}
	return kept, dropped
}

// Clone returns a new Array with a copy of every item, made by the given clone
// function, and the same release function. If clone is nil, DeepCopy is used.
//
// If cloning an item fails, all items cloned so far are released and the
// error is returned. The clone of a nil Array is nil.
func (a *Array[T]) Clone(clone CloneFunc[T]) (*Array[T], error) {
	if a == nil {
		return nil, nil
	}
	if a.destroyed {
		return nil, ErrDestroyed
	}
	if clone == nil {
		clone = DeepCopy[T]
	}

	c, err := NewWithCapacity(a.length, a.release)
	if err != nil {
		return nil, err
	}

	a.visiting++
	defer func() { a.visiting-- }()

	for i := range a.length {
		copied, err := clone(a.buf[i])
		if err != nil {
			cloneErr := fmt.Errorf("%w at index %d: %w", ErrClone, i, err)
			if releaseErr := c.Destroy(); releaseErr != nil {
				return nil, fmt.Errorf("%w (cleanup: %w)", cloneErr, releaseErr)
			}
			return nil, cloneErr
		}
		c.buf[i] = copied
		c.length++
	}
	return c, nil
}

// deepClone implements deepCloner, so that nested Arrays are deep copied by
// DeepCopy.
func (a *Array[T]) deepClone() (any, error) {
	return a.Clone(DeepCopy[T])
}
