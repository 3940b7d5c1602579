// Package darray provides Array, a growable sequence that owns its items.
//
// An Array takes ownership of every item put into it. When an item leaves the
// Array again, through Pop, PopRange, Clear, Unique or Destroy, the Array calls
// its release function on that item. Items that are only handles to resources
// the garbage collector does not manage (files, connections, pooled buffers,
// other Arrays) can so be reclaimed at the right time. Without a release
// function, removed items are simply dropped.
//
// An item must only ever be owned by a single Array that has a release function
// set, otherwise it is released twice.
//
// Arrays of Arrays are expressed directly with the nested type and the method
// expression of Destroy as the release function:
//
//	package main
//
//	import (
//		"fmt"
//
//		"github.com/safing/darray/base/darray"
//	)
//
//	func main() {
//		matrix := darray.New((*darray.Array[*int]).Destroy)
//		for i := range 3 {
//			row := darray.New[*int](nil)
//			for j := range 4 {
//				v := i*4 + j
//				_ = row.Append(&v)
//			}
//			_ = matrix.Append(row)
//		}
//
//		_ = matrix.ForEach(func(row *darray.Array[*int]) error {
//			fmt.Print("[ ")
//			_ = row.ForEach(func(v *int) error {
//				fmt.Printf("%d ", *v)
//				return nil
//			})
//			fmt.Println("]")
//			return nil
//		})
//
//		// Destroys every row as well.
//		_ = matrix.Destroy()
//	}
//
// An Array is not safe for concurrent use.
package darray
