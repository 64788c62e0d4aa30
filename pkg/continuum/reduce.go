package continuum

import (
	"fmt"
	"slices"
)

// Reduce folds one event into the instant, enforcing every transition
// rule. The event is appended to the instant's log before validation,
// so a failed event is still visible as an attempt. Any returned error
// is a *ReduceError wrapping one of the sentinel values in errors.go.
//
// Reduce expects to be called in CompareEvents order; the compiler is
// the only caller that holds an unsealed instant.
func Reduce(inst *Instant, ev Event) error {
	inst.Events = append(inst.Events, ev)

	var err error
	switch e := ev.(type) {
	case InstantEvent:
		err = reduceInstant(inst, e)
	case SetUserEvent:
		err = reduceSetUser(inst, e)
	case DeleteUserEvent:
		err = reduceDeleteUser(inst, e)
	case RoleEvent:
		err = reduceRole(inst, e)
	case EnterRoleEvent:
		err = reduceEnterRole(inst, e)
	case LeaveRoleEvent:
		err = reduceLeaveRole(inst, e)
	default:
		err = fmt.Errorf("unsupported event type %T", ev)
	}
	if err != nil {
		return &ReduceError{Kind: ev.EventKind(), Date: inst.Date, Err: err}
	}
	return nil
}

func reduceInstant(inst *Instant, e InstantEvent) error {
	if inst.Description != nil {
		return ErrDuplicateDescription
	}
	inst.Description = clonePayload(e.Description)
	return nil
}

func reduceSetUser(inst *Instant, e SetUserEvent) error {
	if slices.Contains(inst.UsersChanged, e.User) {
		return fmt.Errorf("user %q: %w", e.User, ErrAlreadyModified)
	}
	inst.UsersChanged = append(inst.UsersChanged, e.User)
	inst.Users[e.User] = clonePayload(e.Data)

	// Seed an empty tenure bucket so the records map lists every
	// known user, not just users who held a role.
	if inst.Records != nil {
		if _, ok := inst.Records[e.User]; !ok {
			inst.Records[e.User] = []TenureRecord{}
		}
	}
	return nil
}

func reduceDeleteUser(inst *Instant, e DeleteUserEvent) error {
	if _, ok := inst.Users[e.User]; !ok {
		return fmt.Errorf("user %q: %w", e.User, ErrUnknownUser)
	}
	for role, members := range inst.Members {
		if slices.Contains(members, e.User) {
			return fmt.Errorf("user %q holds role %q: %w", e.User, role, ErrUserOccupiesRole)
		}
	}

	delete(inst.Users, e.User)
	if inst.Records != nil {
		delete(inst.Records, e.User)
	}
	inst.UsersChanged = append(inst.UsersChanged, e.User)
	return nil
}

func reduceRole(inst *Instant, e RoleEvent) error {
	if slices.Contains(inst.RolesChanged, e.Role) {
		return fmt.Errorf("role %q: %w", e.Role, ErrAlreadyModified)
	}
	inst.RolesChanged = append(inst.RolesChanged, e.Role)

	max := 1
	if e.Max != nil {
		max = *e.Max
	}

	if max <= 0 {
		if _, ok := inst.Roles[e.Role]; !ok {
			return fmt.Errorf("role %q: %w", e.Role, ErrRoleNotFound)
		}
		if len(inst.Members[e.Role]) > 0 {
			return fmt.Errorf("role %q: %w", e.Role, ErrRoleOccupied)
		}
		// The (necessarily empty) members entry stays behind; only
		// the capacity registration is removed.
		delete(inst.Roles, e.Role)
		return nil
	}

	if members, ok := inst.Members[e.Role]; ok && len(members) > max {
		return fmt.Errorf("role %q has %d members, capacity %d: %w", e.Role, len(members), max, ErrTooManyMembers)
	}
	inst.Roles[e.Role] = max
	if _, ok := inst.Members[e.Role]; !ok {
		inst.Members[e.Role] = []string{}
	}
	return nil
}

func reduceEnterRole(inst *Instant, e EnterRoleEvent) error {
	max, ok := inst.Roles[e.Role]
	if !ok {
		return fmt.Errorf("role %q: %w", e.Role, ErrRoleNotFound)
	}
	if _, ok := inst.Users[e.User]; !ok {
		return fmt.Errorf("user %q: %w", e.User, ErrUnknownUser)
	}

	members := inst.Members[e.Role]
	if slices.Contains(members, e.User) {
		return fmt.Errorf("user %q in role %q: %w", e.User, e.Role, ErrAlreadyInRole)
	}

	// The member is appended before the capacity check; compilation
	// aborts on failure, so the speculative seat never leaks into a
	// successfully compiled timeline.
	members = append(members, e.User)
	inst.Members[e.Role] = members
	if len(members) > max {
		return fmt.Errorf("role %q: %w", e.Role, ErrRoleFull)
	}

	if inst.Records != nil {
		records := inst.Records[e.User]
		for _, r := range records {
			if r.Role == e.Role && r.From == inst.Date {
				return fmt.Errorf("user %q role %q: %w", e.User, e.Role, ErrDuplicateOpenRecord)
			}
		}
		inst.Records[e.User] = append(records, TenureRecord{Role: e.Role, From: inst.Date})
	}
	return nil
}

func reduceLeaveRole(inst *Instant, e LeaveRoleEvent) error {
	if _, ok := inst.Roles[e.Role]; !ok {
		return fmt.Errorf("role %q: %w", e.Role, ErrRoleNotFound)
	}
	if _, ok := inst.Users[e.User]; !ok {
		return fmt.Errorf("user %q: %w", e.User, ErrUnknownUser)
	}

	members := inst.Members[e.Role]
	idx := slices.Index(members, e.User)
	if idx < 0 {
		return fmt.Errorf("user %q not in role %q: %w", e.User, e.Role, ErrNotInRole)
	}
	inst.Members[e.Role] = slices.Delete(members, idx, idx+1)

	if inst.Records != nil {
		records := inst.Records[e.User]
		closed := false
		for i := range records {
			if records[i].Role == e.Role && records[i].Until == nil {
				until := inst.Date
				records[i].Until = &until
				closed = true
				break
			}
		}
		if !closed {
			return fmt.Errorf("user %q role %q: %w", e.User, e.Role, ErrNoOpenRecord)
		}
		inst.Records[e.User] = records
	}
	return nil
}
