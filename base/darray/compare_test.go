package darray

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	assert.Negative(t, Compare(1, 2))
	assert.Positive(t, Compare("b", "a"))
	assert.Zero(t, Compare(1.5, 1.5))

	assert.Zero(t, ComparePointers[int](nil, nil))
	assert.Negative(t, ComparePointers(nil, newInt(1)))
	assert.Positive(t, ComparePointers(newInt(1), nil))
	assert.Negative(t, ComparePointers(newInt(1), newInt(2)))

	assert.Positive(t, Reversed(Compare[int])(1, 2))
}

func TestDeepCopy(t *testing.T) {
	t.Parallel()

	src := map[string][]int{"a": {1, 2}}
	copied, err := DeepCopy(src)
	require.NoError(t, err)
	copied["a"][0] = 9
	assert.Equal(t, 1, src["a"][0])

	// Types with a registered copier are fine.
	type stamped struct {
		At time.Time
	}
	now := time.Now()
	copiedStamp, err := DeepCopy(&stamped{At: now})
	require.NoError(t, err)
	assert.True(t, now.Equal(copiedStamp.At))

	_, err = DeepCopy(opaqueItem{n: 1})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	var nilArray *Array[*int]
	copiedArray, err := DeepCopy(nilArray)
	require.NoError(t, err)
	assert.Nil(t, copiedArray)
}

type testCloser struct {
	closed bool
	err    error
}

func (c *testCloser) Close() error {
	c.closed = true
	return c.err
}

func TestReleaseCloser(t *testing.T) {
	t.Parallel()

	errClose := errors.New("close failed")
	a := New(ReleaseCloser[*testCloser])
	ok := &testCloser{}
	failing := &testCloser{err: errClose}
	require.NoError(t, a.Append(ok))
	require.NoError(t, a.Append(failing))

	err := a.Destroy()
	assert.ErrorIs(t, err, ErrRelease)
	assert.ErrorIs(t, err, errClose)
	assert.True(t, ok.closed)
	assert.True(t, failing.closed)
}
