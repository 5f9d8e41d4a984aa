package uniquelist_test

import (
	"loanbook/pkg/serrors"
	"loanbook/pkg/uniquelist"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type entry struct {
	key   string
	value int
}

func newList() *uniquelist.List[entry] {
	return uniquelist.New("entry",
		func(a, b entry) bool { return strings.EqualFold(a.key, b.key) },
		func(a, b entry) bool { return a == b },
	)
}

func TestList_AddAndContains(t *testing.T) {
	l := newList()

	require.NoError(t, l.Add(entry{"a", 1}))
	require.True(t, l.Contains(entry{"A", 99}))
	require.NotContains(t, l.Items(), entry{"A", 99})
	require.Contains(t, l.Items(), entry{"a", 1})

	err := l.Add(entry{"A", 2})
	require.ErrorIs(t, err, serrors.ErrDuplicate)
	require.Equal(t, []entry{{"a", 1}}, l.Items())

	got, ok := serrors.EntityOf(err)
	require.True(t, ok)
	require.Equal(t, entry{"A", 2}, got)
}

func TestList_Set(t *testing.T) {
	l := newList()
	require.NoError(t, l.SetAll([]entry{{"a", 1}, {"b", 2}, {"c", 3}}))

	require.NoError(t, l.Set(entry{"b", 2}, entry{"B", 20}))
	require.Equal(t, []entry{{"a", 1}, {"B", 20}, {"c", 3}}, l.Items())

	require.ErrorIs(t, l.Set(entry{"x", 0}, entry{"y", 0}), serrors.ErrNotFound)
	require.ErrorIs(t, l.Set(entry{"a", 1}, entry{"c", 30}), serrors.ErrDuplicate)
	require.Equal(t, []entry{{"a", 1}, {"B", 20}, {"c", 3}}, l.Items())
}

func TestList_Remove(t *testing.T) {
	l := newList()
	require.NoError(t, l.SetAll([]entry{{"a", 1}, {"b", 2}}))

	require.ErrorIs(t, l.Remove(entry{"a", 2}), serrors.ErrNotFound)
	require.NoError(t, l.Remove(entry{"a", 1}))
	require.Equal(t, []entry{{"b", 2}}, l.Items())
}

func TestList_SetAllRejectsDuplicates(t *testing.T) {
	l := newList()
	require.NoError(t, l.Add(entry{"keep", 1}))

	err := l.SetAll([]entry{{"a", 1}, {"b", 2}, {"A", 3}})
	require.ErrorIs(t, err, serrors.ErrDuplicate)
	require.Equal(t, []entry{{"keep", 1}}, l.Items())
}

func TestList_Find(t *testing.T) {
	l := newList()
	require.NoError(t, l.SetAll([]entry{{"a", 1}, {"b", 2}}))

	got, idx, ok := l.Find(entry{"B", 0})
	require.True(t, ok)
	require.Equal(t, 1, idx)
	require.Equal(t, entry{"b", 2}, got)

	_, idx, ok = l.Find(entry{"z", 0})
	require.False(t, ok)
	require.Equal(t, -1, idx)
}

func TestList_RemoveFuncKeepsOrder(t *testing.T) {
	l := newList()
	require.NoError(t, l.SetAll([]entry{{"a", 1}, {"b", 2}, {"c", 1}, {"d", 3}}))

	var changes []uniquelist.Change[entry]
	l.Subscribe(func(c uniquelist.Change[entry]) { changes = append(changes, c) })

	removed := l.RemoveFunc(func(e entry) bool { return e.value == 1 })
	require.Equal(t, []entry{{"a", 1}, {"c", 1}}, removed)
	require.Equal(t, []entry{{"b", 2}, {"d", 3}}, l.Items())

	require.Len(t, changes, 2)
	require.Equal(t, uniquelist.Removed, changes[0].Kind)
	require.Equal(t, 2, changes[0].Index)
	require.Equal(t, 0, changes[1].Index)

	require.Nil(t, l.RemoveFunc(func(entry) bool { return false }))
}

func TestList_ReplaceFunc(t *testing.T) {
	l := newList()
	require.NoError(t, l.SetAll([]entry{{"a", 1}, {"b", 2}, {"c", 1}}))

	n := l.ReplaceFunc(func(e entry) (entry, bool) {
		if e.value != 1 {
			return e, false
		}
		e.value = 10

		return e, true
	})
	require.Equal(t, 2, n)
	require.Equal(t, []entry{{"a", 10}, {"b", 2}, {"c", 10}}, l.Items())
}

func TestList_SubscribeAndUnsubscribe(t *testing.T) {
	l := newList()

	var kinds []uniquelist.ChangeKind
	unsubscribe := l.Subscribe(func(c uniquelist.Change[entry]) { kinds = append(kinds, c.Kind) })

	require.NoError(t, l.Add(entry{"a", 1}))
	require.NoError(t, l.Set(entry{"a", 1}, entry{"a", 2}))
	require.NoError(t, l.Remove(entry{"a", 2}))
	require.NoError(t, l.SetAll(nil))
	require.Equal(t, []uniquelist.ChangeKind{
		uniquelist.Added, uniquelist.Replaced, uniquelist.Removed, uniquelist.Reset,
	}, kinds)

	unsubscribe()
	require.NoError(t, l.Add(entry{"b", 1}))
	require.Len(t, kinds, 4)

	// failed mutations are not reported
	unsubscribe = l.Subscribe(func(c uniquelist.Change[entry]) { kinds = append(kinds, c.Kind) })
	defer unsubscribe()
	require.Error(t, l.Add(entry{"B", 3}))
	require.Len(t, kinds, 4)
}

func TestList_ItemsIsACopy(t *testing.T) {
	l := newList()
	require.NoError(t, l.Add(entry{"a", 1}))

	items := l.Items()
	items[0].value = 42
	require.Equal(t, entry{"a", 1}, l.At(0))
	require.Equal(t, 1, l.Len())
}

func TestList_Equal(t *testing.T) {
	a, b := newList(), newList()
	require.True(t, a.Equal(b))

	require.NoError(t, a.SetAll([]entry{{"a", 1}, {"b", 2}}))
	require.NoError(t, b.SetAll([]entry{{"b", 2}, {"a", 1}}))
	require.False(t, a.Equal(b), "order matters")

	require.NoError(t, b.SetAll([]entry{{"a", 1}, {"b", 2}}))
	require.True(t, a.Equal(b))
}
