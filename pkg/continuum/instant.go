package continuum

import "slices"

// TenureRecord is one span of a user holding a role. A nil Until
// marks a tenure that is still open.
type TenureRecord struct {
	Role  string `json:"role"`
	From  Date   `json:"from"`
	Until *Date  `json:"until,omitempty"`
}

// Instant is the full state of the organization at one calendar date.
// The compiler mutates an instant in place while folding the events of
// its date into it, then seals it; a sealed instant must never be
// modified.
type Instant struct {
	Date        Date    `json:"date"`
	Description Payload `json:"description,omitempty"`

	// Events holds every event folded into this instant, in
	// application order. Events that failed validation are included:
	// the log records attempts, not just successes.
	Events []Event `json:"events"`

	Users        map[string]Payload `json:"users"`
	UsersChanged []string           `json:"usersChanged"`

	Roles        map[string]int `json:"roles"`
	RolesChanged []string       `json:"rolesChanged"`

	// Members maps each role to its occupants in entry order.
	Members map[string][]string `json:"members"`

	// Records tracks historic tenure spans per user across all
	// instants. A nil map means tenure tracking is disabled.
	Records map[string][]TenureRecord `json:"records,omitempty"`
}

// NewInstant creates the instant at date. With a predecessor, the
// carried-over state (roles, members, users, tenure records) is deep
// copied so that mutating the new instant can never touch the sealed
// one; the per-instant fields (events, change sets, description) start
// empty either way.
func NewInstant(date Date, predecessor *Instant) *Instant {
	inst := &Instant{
		Date:         date,
		Events:       []Event{},
		Users:        map[string]Payload{},
		UsersChanged: []string{},
		Roles:        map[string]int{},
		RolesChanged: []string{},
		Members:      map[string][]string{},
	}
	if predecessor == nil {
		return inst
	}

	for user, data := range predecessor.Users {
		inst.Users[user] = clonePayload(data)
	}
	for role, max := range predecessor.Roles {
		inst.Roles[role] = max
	}
	for role, members := range predecessor.Members {
		inst.Members[role] = slices.Clone(members)
	}
	if predecessor.Records != nil {
		inst.Records = make(map[string][]TenureRecord, len(predecessor.Records))
		for user, records := range predecessor.Records {
			inst.Records[user] = cloneRecords(records)
		}
	}
	return inst
}

// TracksTenure reports whether historic tenure records are maintained
// on this instant.
func (i *Instant) TracksTenure() bool { return i.Records != nil }

// Occupies reports whether user currently holds role.
func (i *Instant) Occupies(role, user string) bool {
	return slices.Contains(i.Members[role], user)
}

func clonePayload(p Payload) Payload {
	if p == nil {
		return nil
	}
	return append(Payload(nil), p...)
}

func cloneRecords(records []TenureRecord) []TenureRecord {
	out := make([]TenureRecord, len(records))
	for i, r := range records {
		out[i] = r
		if r.Until != nil {
			until := *r.Until
			out[i].Until = &until
		}
	}
	return out
}
