package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/activities/internal/domain"
)

func TestSnapshotContainsSeededCatalog(t *testing.T) {
	store := NewMemory()

	snapshot, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot, 9)

	chess, ok := snapshot["Chess Club"]
	require.True(t, ok)
	require.Equal(t, 12, chess.MaxParticipants)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
}

func TestSnapshotIsolatesRegistryState(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	snapshot, err := store.Snapshot(ctx)
	require.NoError(t, err)

	snapshot["Chess Club"].Participants[0] = "tampered@mergington.edu"

	fresh, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, "michael@mergington.edu", fresh["Chess Club"].Participants[0])
}

func TestSignupAppendsInOrder(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	size, err := store.Signup(ctx, "Chess Club", "first@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, 3, size)

	size, err = store.Signup(ctx, "Chess Club", "second@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, 4, size)

	snapshot, err := store.Snapshot(ctx)
	require.NoError(t, err)
	participants := snapshot["Chess Club"].Participants
	require.Equal(t, "first@mergington.edu", participants[2])
	require.Equal(t, "second@mergington.edu", participants[3])
}

func TestSignupRejectsDuplicate(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_, err := store.Signup(ctx, "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, domain.ErrAlreadySignedUp)
}

func TestSignupUnknownActivity(t *testing.T) {
	store := NewMemory()

	_, err := store.Signup(context.Background(), "Knitting Circle", "test@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestUnregisterRemovesOnlyGivenEmail(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_, err := store.Signup(ctx, "Math Club", "extra@mergington.edu")
	require.NoError(t, err)

	size, err := store.Unregister(ctx, "Math Club", "james@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, 2, size)

	snapshot, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"benjamin@mergington.edu", "extra@mergington.edu"}, snapshot["Math Club"].Participants)
}

func TestUnregisterNotRegistered(t *testing.T) {
	store := NewMemory()

	_, err := store.Unregister(context.Background(), "Chess Club", "stranger@mergington.edu")
	require.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestUnregisterUnknownActivity(t *testing.T) {
	store := NewMemory()

	_, err := store.Unregister(context.Background(), "Knitting Circle", "test@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestCapacityNotEnforcedByDefault(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	// Math Club caps at 10 with 2 seeded; push past the cap.
	for i := 0; i < 9; i++ {
		_, err := store.Signup(ctx, "Math Club", emailFor(i))
		require.NoError(t, err)
	}

	snapshot, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Greater(t, len(snapshot["Math Club"].Participants), snapshot["Math Club"].MaxParticipants)
}

func TestCapacityEnforcementRejectsFullActivity(t *testing.T) {
	store := NewMemory(WithCapacityEnforcement())
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		_, err := store.Signup(ctx, "Math Club", emailFor(i))
		require.NoError(t, err)
	}

	_, err := store.Signup(ctx, "Math Club", "overflow@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityFull)

	// Duplicates are still reported as duplicates, not capacity.
	_, err = store.Signup(ctx, "Math Club", emailFor(0))
	require.ErrorIs(t, err, domain.ErrAlreadySignedUp)
}

func emailFor(i int) string {
	return string(rune('a'+i)) + "-student@mergington.edu"
}
