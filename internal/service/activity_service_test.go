package service

import (
	"testing"

	"github.com/sefazor/bored-backend/internal/models"
	"github.com/stretchr/testify/require"
)

func TestSaveThenListRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup(t, "alice", "alice@example.com", "hunter22")

	saved, err := env.activityService.SaveActivity(alice, models.SaveActivityRequest{
		Key:   42,
		Title: "Juggling",
		Type:  "recreational",
		Price: 0.0,
	})
	require.NoError(t, err)
	require.Equal(t, alice.ID, saved.UserID)
	require.Equal(t, 1, saved.Participants) // defaulted
	require.False(t, saved.IsCompleted)
	require.False(t, saved.Timestamp.IsZero())

	activities, err := env.activityService.ListActivities(alice, alice.ID, 30)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.Equal(t, 42, activities[0].Key)
	require.Equal(t, "Juggling", activities[0].Title)
	require.False(t, activities[0].IsCompleted)
}

func TestOwnershipIsolation(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup(t, "alice", "alice@example.com", "hunter22")
	bob := env.signup(t, "bob", "bob@example.com", "hunter22")

	_, err := env.activityService.SaveActivity(alice, models.SaveActivityRequest{
		Key: 42, Title: "Juggling", Type: "recreational",
	})
	require.NoError(t, err)

	// bob cannot read alice's ledger
	_, err = env.activityService.ListActivities(bob, alice.ID, 30)
	require.ErrorIs(t, err, ErrUnauthorized)

	// and alice's rows never show up in bob's
	activities, err := env.activityService.ListActivities(bob, bob.ID, 30)
	require.NoError(t, err)
	require.Empty(t, activities)

	// anonymous is never authorized
	_, err = env.activityService.ListActivities(nil, alice.ID, 30)
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = env.activityService.SaveActivity(nil, models.SaveActivityRequest{
		Key: 1, Title: "x", Type: "busywork",
	})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestIgnoreActivityPersistsAndIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup(t, "alice", "alice@example.com", "hunter22")

	first, err := env.activityService.IgnoreActivity(alice, models.IgnoreActivityRequest{
		Key: 7, Title: "Gardening",
	})
	require.NoError(t, err)
	require.Equal(t, alice.ID, first.UserID)

	// second ignore of the same suggestion succeeds with the same row
	second, err := env.activityService.IgnoreActivity(alice, models.IgnoreActivityRequest{
		Key: 7, Title: "Gardening",
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	ignored, err := env.activityService.ListIgnored(alice, alice.ID)
	require.NoError(t, err)
	require.Len(t, ignored, 1)
}

func TestCompleteActivity(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup(t, "alice", "alice@example.com", "hunter22")
	bob := env.signup(t, "bob", "bob@example.com", "hunter22")

	saved, err := env.activityService.SaveActivity(alice, models.SaveActivityRequest{
		Key: 42, Title: "Juggling", Type: "recreational",
	})
	require.NoError(t, err)

	// bob cannot complete alice's activity, and nothing changes
	_, err = env.activityService.CompleteActivity(bob, saved.ID)
	require.ErrorIs(t, err, ErrUnauthorized)

	reloaded, err := env.activityRepo.GetTrackedByID(saved.ID)
	require.NoError(t, err)
	require.False(t, reloaded.IsCompleted)

	completed, err := env.activityService.CompleteActivity(alice, saved.ID)
	require.NoError(t, err)
	require.True(t, completed.IsCompleted)

	_, err = env.activityService.CompleteActivity(alice, 9999)
	require.ErrorIs(t, err, ErrActivityNotFound)
}

func TestListActivitiesCap(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup(t, "alice", "alice@example.com", "hunter22")

	for i := 0; i < 35; i++ {
		_, err := env.activityService.SaveActivity(alice, models.SaveActivityRequest{
			Key: 100 + i, Title: "Activity", Type: "busywork",
		})
		require.NoError(t, err)
	}

	activities, err := env.activityService.ListActivities(alice, alice.ID, 100)
	require.NoError(t, err)
	require.Len(t, activities, 30)
}
