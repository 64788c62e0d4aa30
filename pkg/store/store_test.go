package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mindburn-Labs/continuum/pkg/continuum"
)

func intp(n int) *int { return &n }

func sampleEvents() []continuum.Event {
	return []continuum.Event{
		continuum.RoleEvent{Date: continuum.Genesis, Role: "board", Max: intp(2)},
		continuum.SetUserEvent{Date: continuum.Genesis, User: "alice", Data: continuum.Payload(`true`)},
		continuum.EnterRoleEvent{Date: "2020-01-01", Role: "board", User: "alice",
			Reason: continuum.LegalReason{Description: continuum.Payload(`"statute"`)}},
		continuum.LeaveRoleEvent{Date: "2020-06-01", Role: "board", User: "alice",
			Reason: continuum.ElectionReason{Votes: map[string]int{"alice": 1}, Abstentions: 0}},
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, ev := range sampleEvents() {
		require.NoError(t, s.Append(ctx, ev))
	}

	n, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(sampleEvents()), n)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleEvents(), loaded)
}

func TestMemoryStoreAppendAll(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.AppendAll(ctx, sampleEvents()))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleEvents(), loaded)
}

func TestMemoryStoreLoadCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.AppendAll(ctx, sampleEvents()))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	loaded[0] = continuum.InstantEvent{Date: "9999-12-31"}

	again, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleEvents()[0], again[0])
}

func TestReplayMatchesDirectCompile(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.AppendAll(ctx, sampleEvents()))

	replayed, err := Replay(ctx, s)
	require.NoError(t, err)
	direct, err := continuum.Compile(sampleEvents())
	require.NoError(t, err)

	fpReplayed, err := replayed.Fingerprint()
	require.NoError(t, err)
	fpDirect, err := direct.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, fpDirect, fpReplayed)
}

func TestReplayWithTenureRecords(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.AppendAll(ctx, sampleEvents()))

	timeline, err := Replay(ctx, s, continuum.WithTenureRecords())
	require.NoError(t, err)

	inst, ok := timeline.Instant("2020-01-01")
	require.True(t, ok)
	require.True(t, inst.TracksTenure())
	require.Len(t, inst.Records["alice"], 1)
	assert.Equal(t, "board", inst.Records["alice"][0].Role)
	assert.Nil(t, inst.Records["alice"][0].Until)
}

func TestReplayPropagatesCompileErrors(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Append(ctx, continuum.DeleteUserEvent{Date: continuum.Genesis, User: "ghost"}))

	_, err := Replay(ctx, s)
	require.ErrorIs(t, err, continuum.ErrUnknownUser)
}
