package continuum

import (
	"errors"
	"fmt"
)

// Every failure in this package is a precondition or invariant
// violation in the event data, never a transient fault. The sentinel
// values below support errors.Is through the ReduceError wrapper.
var (
	ErrDuplicateDescription = errors.New("instant already has a description")
	ErrAlreadyModified      = errors.New("already modified in the same instant")
	ErrUnknownUser          = errors.New("unknown user")
	ErrUserOccupiesRole     = errors.New("user occupies a role")
	ErrRoleNotFound         = errors.New("unknown role")
	ErrRoleOccupied         = errors.New("role still has members")
	ErrTooManyMembers       = errors.New("too many members in role")
	ErrAlreadyInRole        = errors.New("user already in role")
	ErrRoleFull             = errors.New("not enough space in role")
	ErrNotInRole            = errors.New("role not occupied by user")
	ErrDuplicateOpenRecord  = errors.New("tenure record already opened at this date")
	ErrNoOpenRecord         = errors.New("no open tenure record")

	// ErrOutOfOrder signals an internal compiler inconsistency: an
	// event dated before the instant under construction. Unreachable
	// when events are sorted with CompareEvents.
	ErrOutOfOrder = errors.New("event applied out of order")
)

// ReduceError reports an event that failed validation, together with
// the kind of the offending event and the date of the instant it was
// applied to.
type ReduceError struct {
	Kind Kind
	Date Date
	Err  error
}

func (e *ReduceError) Error() string {
	return fmt.Sprintf("invalid event %q at time %q: %v", e.Kind, e.Date, e.Err)
}

func (e *ReduceError) Unwrap() error { return e.Err }
