// Package codec parses and serializes event documents. The wire shape
// is a flat object per event carrying the common date and kind fields
// plus the variant's own fields; documents are lists of events in
// JSON or YAML.
package codec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Mindburn-Labs/continuum/pkg/continuum"
)

type wireReason struct {
	Kind        continuum.ReasonKind `json:"kind"`
	Description json.RawMessage      `json:"description,omitempty"`
	Votes       json.RawMessage      `json:"votes,omitempty"`
	Abstentions int                  `json:"abstentions,omitempty"`
}

type wireEvent struct {
	Date        continuum.Date  `json:"date"`
	Kind        continuum.Kind  `json:"kind"`
	Description json.RawMessage `json:"description,omitempty"`
	User        string          `json:"user,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
	Role        string          `json:"role,omitempty"`
	Max         *int            `json:"max,omitempty"`
	Reason      *wireReason     `json:"reason,omitempty"`
}

// UnmarshalEvent decodes a single event from its JSON wire form.
func UnmarshalEvent(raw []byte) (continuum.Event, error) {
	var w wireEvent
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("codec: decode event: %w", err)
	}

	switch w.Kind {
	case continuum.KindInstant:
		return continuum.InstantEvent{Date: w.Date, Description: w.Description}, nil

	case continuum.KindRole:
		if w.Role == "" {
			return nil, fmt.Errorf("codec: %q event missing role", w.Kind)
		}
		return continuum.RoleEvent{Date: w.Date, Role: w.Role, Max: w.Max}, nil

	case continuum.KindSetUser:
		if w.User == "" {
			return nil, fmt.Errorf("codec: %q event missing user", w.Kind)
		}
		return continuum.SetUserEvent{Date: w.Date, User: w.User, Data: w.Data}, nil

	case continuum.KindDeleteUser:
		if w.User == "" {
			return nil, fmt.Errorf("codec: %q event missing user", w.Kind)
		}
		return continuum.DeleteUserEvent{Date: w.Date, User: w.User}, nil

	case continuum.KindEnterRole, continuum.KindLeaveRole:
		if w.Role == "" || w.User == "" {
			return nil, fmt.Errorf("codec: %q event missing role or user", w.Kind)
		}
		if w.Reason == nil {
			return nil, fmt.Errorf("codec: %q event missing reason", w.Kind)
		}
		reason, err := decodeReason(w.Reason)
		if err != nil {
			return nil, err
		}
		if w.Kind == continuum.KindEnterRole {
			return continuum.EnterRoleEvent{Date: w.Date, Role: w.Role, User: w.User, Reason: reason}, nil
		}
		return continuum.LeaveRoleEvent{Date: w.Date, Role: w.Role, User: w.User, Reason: reason}, nil

	case "":
		return nil, fmt.Errorf("codec: event missing kind")
	default:
		return nil, fmt.Errorf("codec: unknown event kind %q", w.Kind)
	}
}

func decodeReason(w *wireReason) (continuum.Reason, error) {
	switch w.Kind {
	case continuum.ReasonLegal:
		return continuum.LegalReason{Description: w.Description}, nil

	case continuum.ReasonElection:
		votes := map[string]int{}
		if w.Votes != nil {
			if err := json.Unmarshal(w.Votes, &votes); err != nil {
				return nil, fmt.Errorf("codec: election votes: %w", err)
			}
		}
		return continuum.ElectionReason{
			Description: w.Description,
			Votes:       votes,
			Abstentions: w.Abstentions,
		}, nil

	case continuum.ReasonAppointment:
		var tally struct {
			Yes int `json:"yes"`
			No  int `json:"no"`
		}
		if w.Votes != nil {
			if err := json.Unmarshal(w.Votes, &tally); err != nil {
				return nil, fmt.Errorf("codec: appointment votes: %w", err)
			}
		}
		return continuum.AppointmentReason{
			Description: w.Description,
			VotesYes:    tally.Yes,
			VotesNo:     tally.No,
			Abstentions: w.Abstentions,
		}, nil

	case "":
		return nil, fmt.Errorf("codec: reason missing kind")
	default:
		return nil, fmt.Errorf("codec: unknown reason kind %q", w.Kind)
	}
}

// MarshalEvent encodes a single event to its JSON wire form.
func MarshalEvent(ev continuum.Event) ([]byte, error) {
	return json.Marshal(ev)
}

// DecodeJSON decodes a JSON list of events.
func DecodeJSON(data []byte) ([]continuum.Event, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("codec: decode event list: %w", err)
	}
	events := make([]continuum.Event, 0, len(raws))
	for i, raw := range raws {
		ev, err := UnmarshalEvent(raw)
		if err != nil {
			return nil, fmt.Errorf("codec: event %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// DecodeYAML decodes a YAML list of events. The document is converted
// to JSON first so that both formats share one wire definition.
func DecodeYAML(data []byte) ([]continuum.Event, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codec: decode yaml: %w", err)
	}
	if doc == nil {
		return []continuum.Event{}, nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("codec: yaml to json: %w", err)
	}
	return DecodeJSON(raw)
}

// DecodeFile decodes an event document, choosing the format by file
// extension (.json, .yaml, .yml).
func DecodeFile(path string) ([]continuum.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codec: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("codec: unsupported event file extension %q", filepath.Ext(path))
	}
}

// EncodeJSON serializes events as an indented JSON list.
func EncodeJSON(events []continuum.Event) ([]byte, error) {
	if events == nil {
		events = []continuum.Event{}
	}
	out, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("codec: encode event list: %w", err)
	}
	return out, nil
}
