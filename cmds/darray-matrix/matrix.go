package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/safing/darray/base/darray"
	"github.com/safing/darray/base/log"
)

const (
	formatText = "text"
	formatJSON = "json"

	sortNone = "none"
	sortAsc  = "asc"
	sortDesc = "desc"
)

type (
	row    = darray.Array[*int]
	matrix = darray.Array[*row]
)

func run(cmd *cobra.Command, opts *options) (err error) {
	var released int
	m, err := buildMatrix(opts.rows, opts.cols, opts.mod, func(*int) error {
		released++
		return nil
	})
	if err != nil {
		return err
	}
	defer func() {
		destroyErr := m.Destroy()
		log.Debugf("matrix: destroyed, released %d values", released)
		if err == nil {
			err = destroyErr
		}
	}()
	log.Infof("matrix: built %dx%d", opts.rows, opts.cols)

	if err := transformRows(m, opts.sort, opts.unique); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch opts.format {
	case formatJSON:
		err = writeJSON(out, m, opts.rows, opts.cols)
	default:
		err = writeText(out, m)
	}
	if err != nil {
		return err
	}

	if opts.dump {
		values, err := matrixValues(m)
		if err != nil {
			return err
		}
		spew.Fdump(out, values)
	}
	return nil
}

// buildMatrix creates a rows x cols matrix holding i*cols+j at row i, column j.
// Destroying the matrix destroys all rows, which release their values with
// releaseValue.
func buildMatrix(rows, cols, mod int, releaseValue darray.ReleaseFunc[*int]) (*matrix, error) {
	m, err := darray.NewWithCapacity(rows, (*row).Destroy)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		r, err := darray.NewWithCapacity(cols, releaseValue)
		if err != nil {
			_ = m.Destroy()
			return nil, err
		}
		for j := range cols {
			v := i*cols + j
			if mod > 0 {
				v %= mod
			}
			if err := r.Append(&v); err != nil {
				_ = r.Destroy()
				_ = m.Destroy()
				return nil, err
			}
		}
		if err := m.Append(r); err != nil {
			_ = r.Destroy()
			_ = m.Destroy()
			return nil, err
		}
	}

	return m, nil
}

func transformRows(m *matrix, order string, unique bool) error {
	var compare darray.CompareFunc[*int]
	switch order {
	case sortAsc:
		compare = darray.ComparePointers[int]
	case sortDesc:
		compare = darray.Reversed(darray.ComparePointers[int])
	}

	return m.ForEach(func(r *row) error {
		if compare != nil {
			if err := r.Sort(compare); err != nil {
				return err
			}
		}
		if unique {
			before := r.Len()
			if err := r.Unique(darray.ComparePointers[int]); err != nil {
				return err
			}
			log.Tracef("matrix: unique removed %d values from row", before-r.Len())
		}
		return nil
	})
}

func writeText(w io.Writer, m *matrix) error {
	return m.ForEach(func(r *row) error {
		line := &strings.Builder{}
		line.WriteString("[ ")
		if err := r.ForEach(func(v *int) error {
			fmt.Fprintf(line, "%d ", *v)
			return nil
		}); err != nil {
			return err
		}
		line.WriteString("]\n")

		_, err := io.WriteString(w, line.String())
		return err
	})
}

// writeJSON writes the matrix as a JSON document. "rows" and "cols" hold the
// requested dimensions, "lengths" the actual length of every row, which is
// shorter than "cols" if duplicates were removed.
func writeJSON(w io.Writer, m *matrix, rows, cols int) error {
	doc := `{"matrix":[],"lengths":[]}`
	doc, err := sjson.Set(doc, "rows", rows)
	if err != nil {
		return err
	}
	doc, err = sjson.Set(doc, "cols", cols)
	if err != nil {
		return err
	}

	values, err := matrixValues(m)
	if err != nil {
		return err
	}
	for _, rowValues := range values {
		doc, err = sjson.Set(doc, "matrix.-1", rowValues)
		if err != nil {
			return fmt.Errorf("failed to add row: %w", err)
		}
		doc, err = sjson.Set(doc, "lengths.-1", len(rowValues))
		if err != nil {
			return fmt.Errorf("failed to add row length: %w", err)
		}
	}

	_, err = fmt.Fprintln(w, doc)
	return err
}

// matrixValues returns the values of the matrix as plain slices.
func matrixValues(m *matrix) ([][]int, error) {
	values := make([][]int, 0, m.Len())
	err := m.ForEach(func(r *row) error {
		rowValues, err := darray.Aggregate(r, make([]int, 0, r.Len()), func(v *int, result []int) []int {
			return append(result, *v)
		})
		if err != nil {
			return err
		}
		values = append(values, rowValues)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}
