package lists_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/lists"
)

func TestErrorsKeepCause(t *testing.T) {
	requireT := require.New(t)

	l, err := lists.NewChunked[string](2)
	requireT.NoError(err)

	_, err = l.RemoveBack()
	requireT.Equal(lists.ErrEmpty, errors.Cause(err))
	requireT.EqualError(err, "list is empty")

	requireT.NoError(l.PushBack("a"))
	_, err = l.Get(7)
	var badIndex *lists.BadIndexError
	requireT.True(errors.As(err, &badIndex))
	requireT.Equal(7, badIndex.Index)
	requireT.True(errors.Is(err, lists.ErrBadIndex))
	requireT.False(errors.Is(err, lists.ErrEmpty))
	requireT.EqualError(err, "index out of range: 7")
}

func TestErrorsUnimplementedKind(t *testing.T) {
	_, err := lists.New[string]("skip")
	require.EqualError(t, err, `list kind "skip": not implemented`)
	require.Equal(t, lists.ErrUnimplemented, errors.Cause(err))
}
