package continuum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstantEmpty(t *testing.T) {
	inst := NewInstant(Genesis, nil)

	assert.Equal(t, Genesis, inst.Date)
	assert.Nil(t, inst.Description)
	assert.Empty(t, inst.Events)
	assert.Empty(t, inst.Users)
	assert.Empty(t, inst.UsersChanged)
	assert.Empty(t, inst.Roles)
	assert.Empty(t, inst.RolesChanged)
	assert.Empty(t, inst.Members)
	assert.False(t, inst.TracksTenure())
}

func TestNewInstantClonesForward(t *testing.T) {
	pred := NewInstant(Genesis, nil)
	pred.Description = Payload(`"founding"`)
	pred.Events = []Event{RoleEvent{Date: Genesis, Role: "chair"}}
	pred.Roles["chair"] = 1
	pred.RolesChanged = []string{"chair"}
	pred.Members["chair"] = []string{"alice"}
	pred.Users["alice"] = Payload(`{"mail":"alice@example.org"}`)
	pred.UsersChanged = []string{"alice"}

	inst := NewInstant("2020-01-01", pred)

	assert.Equal(t, Date("2020-01-01"), inst.Date)
	assert.Equal(t, pred.Roles, inst.Roles)
	assert.Equal(t, pred.Members, inst.Members)
	assert.Equal(t, pred.Users, inst.Users)

	// Per-instant state resets.
	assert.Nil(t, inst.Description)
	assert.Empty(t, inst.Events)
	assert.Empty(t, inst.UsersChanged)
	assert.Empty(t, inst.RolesChanged)
}

func TestNewInstantChainedCloneKeepsState(t *testing.T) {
	first := NewInstant("2020-01-01", nil)
	first.Roles["board"] = 3
	first.Members["board"] = []string{"a", "b"}
	first.Users["a"] = Payload(`1`)
	first.Users["b"] = Payload(`2`)

	second := NewInstant("2020-02-01", first)
	third := NewInstant("2020-03-01", second)

	assert.Equal(t, first.Roles, third.Roles)
	assert.Equal(t, first.Members, third.Members)
	assert.Equal(t, first.Users, third.Users)
}

func TestNewInstantNoAliasing(t *testing.T) {
	pred := NewInstant(Genesis, nil)
	pred.Roles["board"] = 2
	pred.Members["board"] = []string{"alice"}
	pred.Users["alice"] = Payload(`"data"`)
	pred.Records = map[string][]TenureRecord{
		"alice": {{Role: "board", From: Genesis}},
	}

	inst := NewInstant("2020-01-01", pred)
	inst.Roles["board"] = 9
	inst.Members["board"] = append(inst.Members["board"], "bob")
	inst.Users["bob"] = Payload(`"new"`)
	until := Date("2020-01-01")
	inst.Records["alice"][0].Until = &until

	assert.Equal(t, 2, pred.Roles["board"])
	assert.Equal(t, []string{"alice"}, pred.Members["board"])
	assert.NotContains(t, pred.Users, "bob")
	assert.Nil(t, pred.Records["alice"][0].Until)
}

func TestNewInstantClonesTenureRecords(t *testing.T) {
	until := Date("2020-06-01")
	pred := NewInstant(Genesis, nil)
	pred.Records = map[string][]TenureRecord{
		"alice": {
			{Role: "board", From: Genesis, Until: &until},
			{Role: "chair", From: "2020-06-01"},
		},
		"bob": {},
	}

	inst := NewInstant("2021-01-01", pred)

	require.True(t, inst.TracksTenure())
	assert.Equal(t, pred.Records, inst.Records)

	// The cloned Until pointer must be independent.
	*inst.Records["alice"][0].Until = "1999-01-01"
	assert.Equal(t, Date("2020-06-01"), *pred.Records["alice"][0].Until)
}
