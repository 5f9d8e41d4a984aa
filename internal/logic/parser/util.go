package parser

import (
	"loanbook/internal/logic/command"
	"loanbook/pkg/domain"
	"loanbook/pkg/serrors"
	"strconv"
	"strings"
)

// MessageInvalidIndex is reported when an index is not a positive integer.
const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

// ParseIndex parses a one-based index. Surrounding whitespace is ignored.
func ParseIndex(s string) (command.Index, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, serrors.With(serrors.ErrInvalidFormat, MessageInvalidIndex)
	}

	n, err := strconv.Atoi(s)
	if err != nil || n == 0 {
		return 0, serrors.With(serrors.ErrInvalidFormat, MessageInvalidIndex)
	}

	return command.Index(n), nil
}

// ParseTags parses every tag value. A single empty value yields an empty,
// non-nil slice, which clears the tags when editing.
func ParseTags(values []string) ([]domain.Tag, error) {
	if len(values) == 1 && values[0] == "" {
		return []domain.Tag{}, nil
	}

	tags := make([]domain.Tag, 0, len(values))
	for _, v := range values {
		tag, err := domain.NewTag(v)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

// invalidFormat reports that input does not follow usage.
func invalidFormat(usage string) error {
	return serrors.With(serrors.ErrInvalidFormat, command.MessageInvalidCommandFormat, usage)
}
