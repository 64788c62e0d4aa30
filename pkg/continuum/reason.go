package continuum

import "encoding/json"

// ReasonKind identifies a reason variant on the wire.
type ReasonKind string

const (
	ReasonLegal       ReasonKind = "legal"
	ReasonElection    ReasonKind = "election"
	ReasonAppointment ReasonKind = "appointment"
)

// Reason is the formal justification attached to role entry and exit
// events. Reasons are carried but never inspected by the reducer.
type Reason interface {
	Kind() ReasonKind
}

// LegalReason records a legally mandated transition, e.g. a member
// leaving the association.
type LegalReason struct {
	Description Payload
}

func (LegalReason) Kind() ReasonKind { return ReasonLegal }

// ElectionReason records an election with per-candidate vote counts.
type ElectionReason struct {
	Description Payload
	Votes       map[string]int
	Abstentions int
}

func (ElectionReason) Kind() ReasonKind { return ReasonElection }

// AppointmentReason records an appointment confirmed by a yes/no vote.
type AppointmentReason struct {
	Description Payload
	VotesYes    int
	VotesNo     int
	Abstentions int
}

func (AppointmentReason) Kind() ReasonKind { return ReasonAppointment }

func (r LegalReason) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind        ReasonKind `json:"kind"`
		Description Payload    `json:"description,omitempty"`
	}{ReasonLegal, r.Description})
}

func (r ElectionReason) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind        ReasonKind     `json:"kind"`
		Description Payload        `json:"description,omitempty"`
		Votes       map[string]int `json:"votes"`
		Abstentions int            `json:"abstentions"`
	}{ReasonElection, r.Description, r.Votes, r.Abstentions})
}

func (r AppointmentReason) MarshalJSON() ([]byte, error) {
	type tally struct {
		Yes int `json:"yes"`
		No  int `json:"no"`
	}
	return json.Marshal(struct {
		Kind        ReasonKind `json:"kind"`
		Description Payload    `json:"description,omitempty"`
		Votes       tally      `json:"votes"`
		Abstentions int        `json:"abstentions"`
	}{ReasonAppointment, r.Description, tally{r.VotesYes, r.VotesNo}, r.Abstentions})
}
