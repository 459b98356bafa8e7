package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/designerscolony/colony/internal/session"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTest(t *testing.T) *session.Store {
	t.Helper()

	// Start miniredis server
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	// Create Redis client
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return session.NewStore(client, zap.NewNop())
}

func TestIsAuthenticatedDefaultsFalse(t *testing.T) {
	t.Parallel()

	store := setupTest(t)

	authed, err := store.IsAuthenticated(t.Context(), "rhea")
	require.NoError(t, err)
	assert.False(t, authed)
}

func TestLoginFlipsFlagAndNotifiesOnce(t *testing.T) {
	t.Parallel()

	store := setupTest(t)
	ctx := t.Context()

	edges := 0
	store.OnLogin(func(_ context.Context, owner string) error {
		edges++
		assert.Equal(t, "rhea", owner)
		return nil
	})

	require.NoError(t, store.Login(ctx, "rhea"))

	authed, err := store.IsAuthenticated(ctx, "rhea")
	require.NoError(t, err)
	assert.True(t, authed)
	assert.Equal(t, 1, edges)

	// A second login while already authenticated is not an edge.
	require.NoError(t, store.Login(ctx, "rhea"))
	assert.Equal(t, 1, edges)
}

func TestLogoutClearsFlag(t *testing.T) {
	t.Parallel()

	store := setupTest(t)
	ctx := t.Context()

	require.NoError(t, store.Login(ctx, "rhea"))
	require.NoError(t, store.Logout(ctx, "rhea"))

	authed, err := store.IsAuthenticated(ctx, "rhea")
	require.NoError(t, err)
	assert.False(t, authed)
}

func TestFailedSubscriberReleasesTheEdge(t *testing.T) {
	t.Parallel()

	store := setupTest(t)
	ctx := t.Context()

	failures := 1
	edges := 0
	store.OnLogin(func(_ context.Context, _ string) error {
		if failures > 0 {
			failures--
			return errors.New("transient store failure")
		}

		edges++
		return nil
	})

	// The failing login must not leave the owner authenticated, or the
	// subscriber work would be skipped forever.
	require.Error(t, store.Login(ctx, "rhea"))

	authed, err := store.IsAuthenticated(ctx, "rhea")
	require.NoError(t, err)
	assert.False(t, authed)

	// The retry is a fresh edge and runs the subscriber again.
	require.NoError(t, store.Login(ctx, "rhea"))
	assert.Equal(t, 1, edges)

	authed, err = store.IsAuthenticated(ctx, "rhea")
	require.NoError(t, err)
	assert.True(t, authed)
}

func TestLogoutThenLoginIsANewEdge(t *testing.T) {
	t.Parallel()

	store := setupTest(t)
	ctx := t.Context()

	edges := 0
	store.OnLogin(func(_ context.Context, _ string) error {
		edges++
		return nil
	})

	require.NoError(t, store.Login(ctx, "rhea"))
	require.NoError(t, store.Logout(ctx, "rhea"))
	require.NoError(t, store.Login(ctx, "rhea"))

	assert.Equal(t, 2, edges)
}
