package darray

import (
	"golang.org/x/exp/slices"
)

// Sort sorts all items in place. The sort is not stable.
// It runs in O(n*log(n)), also for sorted and adversarial input.
func (a *Array[T]) Sort(compare CompareFunc[T]) error {
	if err := a.checkMutable(); err != nil {
		return err
	}

	a.visiting++
	defer func() { a.visiting-- }()

	slices.SortFunc(a.buf[:a.length], compare)
	return nil
}
