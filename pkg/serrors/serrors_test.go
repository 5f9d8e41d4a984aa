package serrors_test

import (
	"errors"
	"fmt"
	"loanbook/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrDuplicate,
		serrors.ErrNotFound,
		serrors.ErrInvalidValue,
		serrors.ErrInvalidFormat,
		serrors.ErrCommand,
		serrors.ErrStorage,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("disk full")

	e1 := serrors.With(serrors.ErrNotFound, "no loan %d", 5)
	require.Equal(t, "no loan 5", e1.Error())

	e2 := serrors.Wrap(serrors.ErrStorage, base, "saving")
	require.Equal(t, "saving: disk full", e2.Error())

	e3 := serrors.With(serrors.ErrDuplicate, "")
	require.Equal(t, "DUPLICATE", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrStorage, base, "reading")

	require.ErrorIs(t, e, serrors.ErrStorage)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrNotFound)

	wrapped := fmt.Errorf("outer: %w", e)
	require.ErrorIs(t, wrapped, serrors.ErrStorage)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestEntity(t *testing.T) {
	e := serrors.With(serrors.ErrDuplicate, "dup").WithEntity("Alex Yeoh")
	require.Equal(t, "Alex Yeoh", e.Entity())

	got, ok := serrors.EntityOf(fmt.Errorf("ctx: %w", e))
	require.True(t, ok)
	require.Equal(t, "Alex Yeoh", got)

	_, ok = serrors.EntityOf(errors.New("plain"))
	require.False(t, ok)
}

func TestMessageOf(t *testing.T) {
	inner := serrors.With(serrors.ErrInvalidValue, "Phone numbers should only contain numbers")
	require.Equal(t, "Phone numbers should only contain numbers",
		serrors.MessageOf(fmt.Errorf("decode person: %w", inner)))
	require.Equal(t, "plain", serrors.MessageOf(errors.New("plain")))
	require.Empty(t, serrors.MessageOf(nil))
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrStorage, base, "no file")
	require.Equal(t, serrors.ErrStorage, e.Kind())
	require.Equal(t, "no file", e.Message())
	require.Equal(t, base, e.Cause())
	require.Nil(t, e.Entity())
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrCommand, serrors.KindOf(fmt.Errorf("run: %w", serrors.With(serrors.ErrCommand, "failed"))))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))
}
