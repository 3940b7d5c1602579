package darray

import (
	"iter"
)

// ForEach calls visit for every item in ascending order. The amount of visited
// items is fixed when ForEach is called. The first error returned by visit
// stops the traversal and is returned.
//
// visit may change the items themselves, but while ForEach runs, every
// operation that changes the length or order of the Array fails with
// ErrTraversal.
func (a *Array[T]) ForEach(visit func(item T) error) error {
	if a == nil {
		return nil
	}
	if a.destroyed {
		return ErrDestroyed
	}

	a.visiting++
	defer func() { a.visiting-- }()

	n := a.length
	for i := range n {
		if err := visit(a.buf[i]); err != nil {
			return err
		}
	}
	return nil
}

// Aggregate folds all items of the Array into result, in ascending order.
// The same restrictions as for ForEach apply to combine.
func Aggregate[T, R any](a *Array[T], result R, combine func(item T, result R) R) (R, error) {
	err := a.ForEach(func(item T) error {
		result = combine(item, result)
		return nil
	})
	return result, err
}

// Search returns the index of the first item for which compare(item, target)
// returns zero.
func (a *Array[T]) Search(target T, compare CompareFunc[T]) (index int, found bool) {
	if a == nil || a.destroyed {
		return 0, false
	}

	a.visiting++
	defer func() { a.visiting-- }()

	for i := range a.length {
		if compare(a.buf[i], target) == 0 {
			return i, true
		}
	}
	return 0, false
}

// All returns an iterator over all indexes and items. The same restrictions as
// for ForEach apply while iterating.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if a == nil || a.destroyed {
			return
		}

		a.visiting++
		defer func() { a.visiting-- }()

		n := a.length
		for i := range n {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}

// Items returns a copy of the item slice. The items are still owned by the
// Array.
func (a *Array[T]) Items() []T {
	if a == nil || a.destroyed {
		return nil
	}

	items := make([]T, a.length)
	copy(items, a.buf[:a.length])
	return items
}
