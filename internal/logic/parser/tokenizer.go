package parser

import (
	"loanbook/pkg/serrors"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix marks the start of an argument, e.g. "n/" in "add n/John".
type Prefix string

// Prefixes understood by the commands.
const (
	PrefixName        Prefix = "n/"
	PrefixPhone       Prefix = "p/"
	PrefixEmail       Prefix = "e/"
	PrefixAddress     Prefix = "a/"
	PrefixTag         Prefix = "t/"
	PrefixValue       Prefix = "v/"
	PrefixDescription Prefix = "d/"
	PrefixLoanNumber  Prefix = "l/"
)

// MessageDuplicateFields is reported when a single-valued prefix is repeated.
const MessageDuplicateFields = "Multiple values specified for the following single-valued field(s): "

// ArgumentMultimap maps prefixes to the values that followed them, in input
// order. The text before the first prefix is the preamble.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Value returns the last value given for p.
func (a ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}

	return vs[len(vs)-1], true
}

// AllValues returns every value given for p.
func (a ArgumentMultimap) AllValues(p Prefix) []string { return slices.Clone(a.values[p]) }

// Preamble returns the trimmed text before the first prefix.
func (a ArgumentMultimap) Preamble() string { return a.preamble }

// Has reports whether every prefix in ps was given at least once.
func (a ArgumentMultimap) Has(ps ...Prefix) bool {
	for _, p := range ps {
		if len(a.values[p]) == 0 {
			return false
		}
	}

	return true
}

// VerifyNoDuplicatePrefixesFor fails when any of ps was given more than once.
func (a ArgumentMultimap) VerifyNoDuplicatePrefixesFor(ps ...Prefix) error {
	var dup []string
	for _, p := range ps {
		if len(a.values[p]) > 1 {
			dup = append(dup, string(p))
		}
	}
	if len(dup) > 0 {
		return serrors.With(serrors.ErrInvalidFormat, "%s%s", MessageDuplicateFields, strings.Join(dup, " "))
	}

	return nil
}

type position struct {
	start  int
	prefix Prefix
}

// Tokenize splits args into a preamble and prefixed values. A prefix only
// counts when it starts the input or follows whitespace, so "a/b" inside a
// value such as "Blk 30/a/1" does not split it.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	var positions []position
	for _, p := range prefixes {
		for from := 0; ; {
			i := strings.Index(args[from:], string(p))
			if i < 0 {
				break
			}
			i += from
			if i == 0 || isSpaceBefore(args, i) {
				positions = append(positions, position{start: i, prefix: p})
			}
			from = i + len(p)
		}
	}
	slices.SortFunc(positions, func(a, b position) int { return a.start - b.start })

	out := ArgumentMultimap{values: map[Prefix][]string{}}
	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	out.preamble = strings.TrimSpace(args[:end])

	for i, pos := range positions {
		end := len(args)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : end])
		out.values[pos.prefix] = append(out.values[pos.prefix], value)
	}

	return out
}

func isSpaceBefore(s string, i int) bool {
	r, _ := utf8.DecodeLastRuneInString(s[:i])

	return unicode.IsSpace(r)
}
