package service

import (
	"testing"

	"github.com/sefazor/bored-backend/internal/models"
	"github.com/stretchr/testify/require"
)

func TestGetProfileOwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup(t, "alice", "alice@example.com", "hunter22")
	bob := env.signup(t, "bob", "bob@example.com", "hunter22")

	profile, err := env.userService.GetProfile(alice, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", profile.Username)

	_, err = env.userService.GetProfile(bob, alice.ID)
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = env.userService.GetProfile(nil, alice.ID)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestDeleteAccountCascades(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup(t, "alice", "alice@example.com", "hunter22")

	_, err := env.activityService.SaveActivity(alice, models.SaveActivityRequest{
		Key: 42, Title: "Juggling", Type: "recreational",
	})
	require.NoError(t, err)
	_, err = env.activityService.IgnoreActivity(alice, models.IgnoreActivityRequest{
		Key: 7, Title: "Gardening",
	})
	require.NoError(t, err)

	require.NoError(t, env.userService.DeleteAccount(alice))

	// credentials are gone
	_, err = env.authService.Login(models.LoginRequest{
		Username: "alice",
		Password: "hunter22",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// and so is everything the user owned
	var tracked, ignored int64
	require.NoError(t, env.db.Model(&models.UserActivity{}).Where("user_id = ?", alice.ID).Count(&tracked).Error)
	require.NoError(t, env.db.Model(&models.IgnoredActivity{}).Where("user_id = ?", alice.ID).Count(&ignored).Error)
	require.Zero(t, tracked)
	require.Zero(t, ignored)
}
