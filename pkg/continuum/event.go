// Package continuum models the evolution of an organization's role
// assignments over calendar dates. An unordered log of typed events is
// compiled into an ordered sequence of immutable point-in-time
// snapshots ("instants"), with every transition validated against the
// state it applies to.
package continuum

import "encoding/json"

// Payload is an opaque JSON value carried on events. The model never
// inspects payloads; it only copies them and compares them
// structurally.
type Payload = json.RawMessage

// Kind identifies an event variant on the wire.
type Kind string

const (
	KindInstant    Kind = "instant"
	KindLeaveRole  Kind = "leave"
	KindDeleteUser Kind = "deleteUser"
	KindRole       Kind = "role"
	KindSetUser    Kind = "user"
	KindEnterRole  Kind = "enter"
)

// kindPriority fixes the order of events sharing a date. Descriptions
// come first so error messages can reference them, departures before
// arrivals so a user can vacate a seat another user fills the same
// day, and deletions before redefinitions.
var kindPriority = map[Kind]int{
	KindInstant:    0,
	KindLeaveRole:  1,
	KindDeleteUser: 2,
	KindRole:       3,
	KindSetUser:    4,
	KindEnterRole:  5,
}

// Event is one entry in the model's event log. Exactly six variants
// exist: InstantEvent, RoleEvent, SetUserEvent, DeleteUserEvent,
// EnterRoleEvent and LeaveRoleEvent.
type Event interface {
	// EventDate returns the date the event takes effect.
	EventDate() Date
	// EventKind returns the wire kind of the event.
	EventKind() Kind
}

// InstantEvent attaches a one-time description to the snapshot active
// at its date, e.g. "General Assembly 2020".
type InstantEvent struct {
	Date        Date
	Description Payload
}

func (e InstantEvent) EventDate() Date { return e.Date }
func (e InstantEvent) EventKind() Kind { return KindInstant }

// RoleEvent creates or resizes a role. A nil Max defaults to capacity
// 1; a Max <= 0 deletes the role.
type RoleEvent struct {
	Date Date
	Role string
	Max  *int
}

func (e RoleEvent) EventDate() Date { return e.Date }
func (e RoleEvent) EventKind() Kind { return KindRole }

// SetUserEvent creates a user or overwrites their payload.
type SetUserEvent struct {
	Date Date
	User string
	Data Payload
}

func (e SetUserEvent) EventDate() Date { return e.Date }
func (e SetUserEvent) EventKind() Kind { return KindSetUser }

// DeleteUserEvent removes a user and their payload.
type DeleteUserEvent struct {
	Date Date
	User string
}

func (e DeleteUserEvent) EventDate() Date { return e.Date }
func (e DeleteUserEvent) EventKind() Kind { return KindDeleteUser }

// EnterRoleEvent assigns a user to a role.
type EnterRoleEvent struct {
	Date   Date
	Role   string
	User   string
	Reason Reason
}

func (e EnterRoleEvent) EventDate() Date { return e.Date }
func (e EnterRoleEvent) EventKind() Kind { return KindEnterRole }

// LeaveRoleEvent removes a user from a role.
type LeaveRoleEvent struct {
	Date   Date
	Role   string
	User   string
	Reason Reason
}

func (e LeaveRoleEvent) EventDate() Date { return e.Date }
func (e LeaveRoleEvent) EventKind() Kind { return KindLeaveRole }

// CompareEvents totally orders events by date, then by the fixed kind
// priority. Events of the same date and kind compare equal; callers
// must use a stable sort to preserve their relative input order.
func CompareEvents(a, b Event) int {
	if d := CompareDates(a.EventDate(), b.EventDate()); d != 0 {
		return d
	}
	return kindPriority[a.EventKind()] - kindPriority[b.EventKind()]
}

// MarshalJSON renders the event in the wire shape shared with the
// codec package: common date and kind fields plus the variant fields.

func (e InstantEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date        Date    `json:"date"`
		Kind        Kind    `json:"kind"`
		Description Payload `json:"description,omitempty"`
	}{e.Date, KindInstant, e.Description})
}

func (e RoleEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date Date   `json:"date"`
		Kind Kind   `json:"kind"`
		Role string `json:"role"`
		Max  *int   `json:"max,omitempty"`
	}{e.Date, KindRole, e.Role, e.Max})
}

func (e SetUserEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date Date    `json:"date"`
		Kind Kind    `json:"kind"`
		User string  `json:"user"`
		Data Payload `json:"data,omitempty"`
	}{e.Date, KindSetUser, e.User, e.Data})
}

func (e DeleteUserEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date Date   `json:"date"`
		Kind Kind   `json:"kind"`
		User string `json:"user"`
	}{e.Date, KindDeleteUser, e.User})
}

func (e EnterRoleEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date   Date   `json:"date"`
		Kind   Kind   `json:"kind"`
		Role   string `json:"role"`
		User   string `json:"user"`
		Reason Reason `json:"reason,omitempty"`
	}{e.Date, KindEnterRole, e.Role, e.User, e.Reason})
}

func (e LeaveRoleEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date   Date   `json:"date"`
		Kind   Kind   `json:"kind"`
		Role   string `json:"role"`
		User   string `json:"user"`
		Reason Reason `json:"reason,omitempty"`
	}{e.Date, KindLeaveRole, e.Role, e.User, e.Reason})
}
