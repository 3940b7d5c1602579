package darray

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// SetRelease replaces the release function. It may be nil.
func (a *Array[T]) SetRelease(release ReleaseFunc[T]) error {
	switch {
	case a == nil:
		return fmt.Errorf("%w: nil array", ErrInvalidArgument)
	case a.destroyed:
		return ErrDestroyed
	}
	a.release = release
	return nil
}

// Append adds item at the end of the Array. The Array takes ownership of item.
func (a *Array[T]) Append(item T) error {
	return a.Insert(a.Len(), item)
}

// Insert adds item at index and moves all following items one slot back.
// The Array takes ownership of item.
func (a *Array[T]) Insert(index int, item T) error {
	if err := a.checkMutable(); err != nil {
		return err
	}
	if index < 0 || index > a.length {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfRange, index, a.length)
	}
	if err := a.grow(1); err != nil {
		return err
	}

	copy(a.buf[index+1:a.length+1], a.buf[index:a.length])
	a.buf[index] = item
	a.length++
	return nil
}

// Pop removes and releases the item at index.
func (a *Array[T]) Pop(index int) error {
	if err := a.checkMutable(); err != nil {
		return err
	}
	if index < 0 || index >= a.length {
		return fmt.Errorf("%w: pop at %d, length %d", ErrIndexOutOfRange, index, a.length)
	}
	return a.remove(index, index+1)
}

// PopRange removes and releases all items from start (inclusive) to end
// (exclusive). Items are released in ascending order.
func (a *Array[T]) PopRange(start, end int) error {
	if err := a.checkMutable(); err != nil {
		return err
	}
	if start < 0 || start > end || end > a.length {
		return fmt.Errorf("%w: [%d, %d) with length %d", ErrInvalidRange, start, end, a.length)
	}
	return a.remove(start, end)
}

// Clear removes and releases all items. The capacity is kept.
func (a *Array[T]) Clear() error {
	return a.PopRange(0, a.Len())
}

// Destroy removes and releases all items and drops the storage.
// The Array must not be used afterwards; all operations fail with
// ErrDestroyed.
func (a *Array[T]) Destroy() error {
	if err := a.checkMutable(); err != nil {
		return err
	}

	err := a.remove(0, a.length)
	a.buf = nil
	a.release = nil
	a.destroyed = true
	return err
}

// remove releases [start, end) and closes the gap. Bounds must be checked by
// the caller. Release errors do not stop the removal.
func (a *Array[T]) remove(start, end int) error {
	if start == end {
		return nil
	}

	errs := a.releaseAll(a.buf[start:end])

	copy(a.buf[start:], a.buf[end:a.length])
	clear(a.buf[a.length-(end-start) : a.length])
	a.length -= end - start

	return errs
}

// releaseAll calls the release function on all given items and collects the
// errors.
func (a *Array[T]) releaseAll(items []T) error {
	if a.release == nil {
		return nil
	}

	var errs *multierror.Error
	for _, item := range items {
		if err := a.release(item); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrRelease, err)
	}
	return nil
}
