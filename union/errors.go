package union

import (
	"fmt"
	"strings"
)

// MismatchError access to an alternative which is not active
type MismatchError struct {
	Active    int
	Requested int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("union: alternative #%d requested while #%d is active", e.Requested, e.Active)
}

// Mismatch returns an error for generated accessors called for non-active alternative
func Mismatch(active, requested int) error {
	return &MismatchError{
		Active:    active,
		Requested: requested,
	}
}

// UnknownTagError tag out of the closed alternative set
type UnknownTagError struct {
	Tag int
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("union: unknown tag #%d", e.Tag)
}

// UnknownTag returns an error for unreachable tag switch branches
func UnknownTag(tag int) error {
	return &UnknownTagError{Tag: tag}
}

// DuplicateCaseError more than one case clause for the same alternative
type DuplicateCaseError struct {
	Tag int
}

func (e *DuplicateCaseError) Error() string {
	return fmt.Sprintf("union: duplicate case for alternative #%d", e.Tag)
}

// ClauseOrderError otherwise clause is not the single trailing clause
type ClauseOrderError struct {
	Position int
	Reason   string
}

func (e *ClauseOrderError) Error() string {
	return fmt.Sprintf("union: clause %d: %s", e.Position, e.Reason)
}

// NonExhaustiveError alternatives left without case and there is no otherwise clause
type NonExhaustiveError struct {
	Missing []int
}

func (e *NonExhaustiveError) Error() string {
	var buf strings.Builder
	buf.WriteString("union: non-exhaustive match, no case for alternatives")
	for i, tag := range e.Missing {
		if i > 0 {
			buf.WriteByte(',')
		}
		_, _ = fmt.Fprintf(&buf, " #%d", tag)
	}
	return buf.String()
}
