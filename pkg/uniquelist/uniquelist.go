// Package uniquelist provides an ordered list that rejects duplicates under a
// caller-supplied equivalence and notifies subscribers after every mutation.
//
// Two equivalences are involved. "Same" is the looser identity check used for
// duplicate detection and lookups. "Exact" is full-value equality, used to
// locate the entry a Set or Remove targets and to compare lists.
package uniquelist

import (
	"loanbook/pkg/serrors"
	"slices"
)

// ChangeKind describes what a mutation did to the list.
type ChangeKind int

const (
	// Added means New was appended at Index.
	Added ChangeKind = iota
	// Replaced means Old at Index was replaced by New.
	Replaced
	// Removed means Old was removed from Index.
	Removed
	// Reset means the whole content was replaced. Index is -1.
	Reset
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Replaced:
		return "replaced"
	case Removed:
		return "removed"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Change is delivered to subscribers after a mutation has been applied.
type Change[T any] struct {
	Kind  ChangeKind
	Index int
	Old   T
	New   T
}

// Equivalence reports whether two entries are considered equal.
type Equivalence[T any] func(a, b T) bool

// List is an ordered sequence of unique entries. The zero value is not usable;
// construct one with New.
type List[T any] struct {
	items     []T
	same      Equivalence[T]
	exact     Equivalence[T]
	observers map[int]func(Change[T])
	nextObsID int
	// noun is used in error messages, e.g. "person" or "loan".
	noun string
}

// New returns an empty list using same for duplicate detection and exact for
// locating targets. noun names the entity in error messages.
func New[T any](noun string, same, exact Equivalence[T]) *List[T] {
	return &List[T]{
		same:      same,
		exact:     exact,
		observers: map[int]func(Change[T]){},
		noun:      noun,
	}
}

// Contains reports whether an entry "same" as item is present.
func (l *List[T]) Contains(item T) bool {
	return slices.ContainsFunc(l.items, func(v T) bool { return l.same(v, item) })
}

// Find returns the first entry "same" as item together with its index.
func (l *List[T]) Find(item T) (T, int, bool) {
	idx := slices.IndexFunc(l.items, func(v T) bool { return l.same(v, item) })
	if idx < 0 {
		var zero T

		return zero, -1, false
	}

	return l.items[idx], idx, true
}

// Add appends item. It fails with serrors.ErrDuplicate if an entry "same" as
// item is already present.
func (l *List[T]) Add(item T) error {
	if l.Contains(item) {
		return serrors.With(serrors.ErrDuplicate, "duplicate %s", l.noun).WithEntity(item)
	}

	l.items = append(l.items, item)
	l.notify(Change[T]{Kind: Added, Index: len(l.items) - 1, New: item})

	return nil
}

// Set replaces the entry exactly equal to target with replacement, keeping its
// position. It fails with serrors.ErrNotFound when target is absent and with
// serrors.ErrDuplicate when replacement is "same" as a different entry.
func (l *List[T]) Set(target, replacement T) error {
	idx := slices.IndexFunc(l.items, func(v T) bool { return l.exact(v, target) })
	if idx < 0 {
		return serrors.With(serrors.ErrNotFound, "%s not found", l.noun).WithEntity(target)
	}

	for i, v := range l.items {
		if i != idx && l.same(v, replacement) {
			return serrors.With(serrors.ErrDuplicate, "duplicate %s", l.noun).WithEntity(replacement)
		}
	}

	old := l.items[idx]
	l.items[idx] = replacement
	l.notify(Change[T]{Kind: Replaced, Index: idx, Old: old, New: replacement})

	return nil
}

// Remove deletes the entry exactly equal to item. It fails with
// serrors.ErrNotFound when no such entry exists.
func (l *List[T]) Remove(item T) error {
	idx := slices.IndexFunc(l.items, func(v T) bool { return l.exact(v, item) })
	if idx < 0 {
		return serrors.With(serrors.ErrNotFound, "%s not found", l.noun).WithEntity(item)
	}

	old := l.items[idx]
	l.items = slices.Delete(l.items, idx, idx+1)
	l.notify(Change[T]{Kind: Removed, Index: idx, Old: old})

	return nil
}

// SetAll replaces the whole content with items. It fails with
// serrors.ErrDuplicate, leaving the list untouched, if items holds two entries
// that are "same" as each other.
func (l *List[T]) SetAll(items []T) error {
	if err := l.checkUnique(items); err != nil {
		return err
	}

	l.items = slices.Clone(items)
	l.notify(Change[T]{Kind: Reset, Index: -1})

	return nil
}

// RemoveFunc deletes every entry matching pred and returns the removed entries
// in their original order. The relative order of the remaining entries is kept.
func (l *List[T]) RemoveFunc(pred func(T) bool) []T {
	var removed []T
	kept := l.items[:0:0]
	for _, v := range l.items {
		if pred(v) {
			removed = append(removed, v)

			continue
		}
		kept = append(kept, v)
	}
	if len(removed) == 0 {
		return nil
	}

	// report removals against the pre-removal indexes, back to front
	old := l.items
	l.items = kept
	for i := len(old) - 1; i >= 0; i-- {
		if pred(old[i]) {
			l.notify(Change[T]{Kind: Removed, Index: i, Old: old[i]})
		}
	}

	return removed
}

// ReplaceFunc rewrites entries in place. fn returns the new value and whether
// it differs from the old one. It returns the number of entries rewritten.
// The caller is responsible for keeping the rewritten entries unique.
func (l *List[T]) ReplaceFunc(fn func(T) (T, bool)) int {
	n := 0
	for i, v := range l.items {
		nv, changed := fn(v)
		if !changed {
			continue
		}
		l.items[i] = nv
		n++
		l.notify(Change[T]{Kind: Replaced, Index: i, Old: v, New: nv})
	}

	return n
}

// Items returns a copy of the entries in insertion order.
func (l *List[T]) Items() []T { return slices.Clone(l.items) }

// Len returns the number of entries.
func (l *List[T]) Len() int { return len(l.items) }

// At returns the entry at index i. It panics if i is out of range.
func (l *List[T]) At(i int) T { return l.items[i] }

// Equal reports whether both lists hold exactly equal entries in the same order.
func (l *List[T]) Equal(other *List[T]) bool {
	return slices.EqualFunc(l.items, other.items, func(a, b T) bool { return l.exact(a, b) })
}

// Subscribe registers fn to be called after every mutation and returns a
// function that removes the subscription.
func (l *List[T]) Subscribe(fn func(Change[T])) func() {
	id := l.nextObsID
	l.nextObsID++
	l.observers[id] = fn

	return func() { delete(l.observers, id) }
}

// checkUnique reports the first pair of "same" entries in items.
func (l *List[T]) checkUnique(items []T) error {
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if l.same(items[i], items[j]) {
				return serrors.With(serrors.ErrDuplicate, "duplicate %s", l.noun).WithEntity(items[j])
			}
		}
	}

	return nil
}

func (l *List[T]) notify(c Change[T]) {
	for _, fn := range l.observers {
		fn(c)
	}
}
