package tracker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/designerscolony/colony/internal/database/types/enum"
	"github.com/designerscolony/colony/internal/session"
	"github.com/designerscolony/colony/internal/tracker"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTest(t *testing.T) (*tracker.Controller, *session.Store, *miniredis.Miniredis) {
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

	logger := zap.NewNop()
	sessions := session.NewStore(client, logger)
	controller := tracker.NewController(client, sessions, tracker.DefaultFreeTierLimit, logger)

	return controller, sessions, mr
}

func TestAddRowDefaults(t *testing.T) {
	t.Parallel()

	controller, _, _ := setupTest(t)
	ctx := t.Context()

	app, err := controller.AddRow(ctx, "maya")
	require.NoError(t, err)
	assert.NotEmpty(t, app.ID)
	assert.Equal(t, enum.StageApplied, app.CurrentStage)
	assert.Equal(t, enum.OutcomeWaiting, app.Outcome)

	apps, err := controller.List(ctx, "maya")
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestFreeTierCeiling(t *testing.T) {
	t.Parallel()

	controller, _, _ := setupTest(t)
	ctx := t.Context()

	// Three rows fit under the anonymous ceiling.
	for range 3 {
		_, err := controller.AddRow(ctx, "maya")
		require.NoError(t, err)
	}

	// The fourth is a rejected no-op.
	_, err := controller.AddRow(ctx, "maya")
	require.ErrorIs(t, err, tracker.ErrFreeTierLimit)

	apps, err := controller.List(ctx, "maya")
	require.NoError(t, err)
	assert.Len(t, apps, 3)
}

func TestRowsReadOnlyAtCeiling(t *testing.T) {
	t.Parallel()

	controller, _, _ := setupTest(t)
	ctx := t.Context()

	var firstID string

	for i := range 3 {
		app, err := controller.AddRow(ctx, "maya")
		require.NoError(t, err)

		if i == 0 {
			firstID = app.ID
		}
	}

	_, err := controller.UpdateField(ctx, "maya", firstID, "company", "Figma")
	assert.ErrorIs(t, err, tracker.ErrFreeTierLocked)

	err = controller.Delete(ctx, "maya", firstID)
	assert.ErrorIs(t, err, tracker.ErrFreeTierLocked)
}

func TestEditsBelowCeiling(t *testing.T) {
	t.Parallel()

	controller, _, _ := setupTest(t)
	ctx := t.Context()

	app, err := controller.AddRow(ctx, "maya")
	require.NoError(t, err)

	updated, err := controller.UpdateField(ctx, "maya", app.ID, "company", "Figma")
	require.NoError(t, err)
	assert.Equal(t, "Figma", updated.Company)

	require.NoError(t, controller.Delete(ctx, "maya", app.ID))

	apps, err := controller.List(ctx, "maya")
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestNoCeilingWhenAuthenticated(t *testing.T) {
	t.Parallel()

	controller, sessions, _ := setupTest(t)
	ctx := t.Context()

	require.NoError(t, sessions.Login(ctx, "maya"))

	for range 10 {
		_, err := controller.AddRow(ctx, "maya")
		require.NoError(t, err)
	}

	apps, err := controller.List(ctx, "maya")
	require.NoError(t, err)
	assert.Len(t, apps, 10)
}

func TestMigrationOnLoginEdge(t *testing.T) {
	t.Parallel()

	controller, sessions, _ := setupTest(t)
	ctx := t.Context()

	// One permanent row from an earlier authenticated stretch.
	require.NoError(t, sessions.Login(ctx, "maya"))
	permApp, err := controller.AddRow(ctx, "maya")
	require.NoError(t, err)
	_, err = controller.UpdateField(ctx, "maya", permApp.ID, "company", "Stripe")
	require.NoError(t, err)
	require.NoError(t, sessions.Logout(ctx, "maya"))

	// Two anonymous rows in the temporary partition.
	tempA, err := controller.AddRow(ctx, "maya")
	require.NoError(t, err)
	tempB, err := controller.AddRow(ctx, "maya")
	require.NoError(t, err)

	// Logging in migrates: existing permanent rows first, then the
	// temporary rows in order.
	require.NoError(t, sessions.Login(ctx, "maya"))

	apps, err := controller.List(ctx, "maya")
	require.NoError(t, err)
	require.Len(t, apps, 3)
	assert.Equal(t, permApp.ID, apps[0].ID)
	assert.Equal(t, tempA.ID, apps[1].ID)
	assert.Equal(t, tempB.ID, apps[2].ID)

	// A spurious second login is not an edge and duplicates nothing.
	require.NoError(t, sessions.Login(ctx, "maya"))

	apps, err = controller.List(ctx, "maya")
	require.NoError(t, err)
	assert.Len(t, apps, 3)
}

func TestMigrationRunsOnRetryAfterFailedLogin(t *testing.T) {
	t.Parallel()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	sessions := session.NewStore(client, zap.NewNop())

	// A subscriber ahead of the migration fails once, aborting the first
	// login before the tracker's migration runs.
	failures := 1
	sessions.OnLogin(func(_ context.Context, _ string) error {
		if failures > 0 {
			failures--
			return errors.New("transient store failure")
		}

		return nil
	})

	controller := tracker.NewController(client, sessions, tracker.DefaultFreeTierLimit, zap.NewNop())
	ctx := t.Context()

	tempA, err := controller.AddRow(ctx, "maya")
	require.NoError(t, err)
	tempB, err := controller.AddRow(ctx, "maya")
	require.NoError(t, err)

	// The failed login releases the edge instead of stranding the rows
	// in the temporary partition.
	require.Error(t, sessions.Login(ctx, "maya"))

	require.NoError(t, sessions.Login(ctx, "maya"))

	apps, err := controller.List(ctx, "maya")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, tempA.ID, apps[0].ID)
	assert.Equal(t, tempB.ID, apps[1].ID)
}

func TestUpdateFieldRoundTrip(t *testing.T) {
	t.Parallel()

	controller, _, _ := setupTest(t)
	ctx := t.Context()

	app, err := controller.AddRow(ctx, "maya")
	require.NoError(t, err)

	fields := map[string]string{
		"company":        "Figma",
		"role":           "Product Designer",
		"appliedOn":      "2026-08-15",
		"currentStage":   string(enum.StageInterviewR1),
		"interviewNotes": "portfolio round went well",
		"outcome":        string(enum.OutcomeWaiting),
		"whatILearned":   "ask about the design org early",
	}

	for field, value := range fields {
		_, err := controller.UpdateField(ctx, "maya", app.ID, field, value)
		require.NoError(t, err, "field %s", field)
	}

	// Reload from persistence and verify every value survived.
	apps, err := controller.List(ctx, "maya")
	require.NoError(t, err)
	require.Len(t, apps, 1)

	got := apps[0]
	assert.Equal(t, "Figma", got.Company)
	assert.Equal(t, "Product Designer", got.Role)
	assert.Equal(t, "2026-08-15", got.AppliedOn)
	assert.Equal(t, enum.StageInterviewR1, got.CurrentStage)
	assert.Equal(t, "portfolio round went well", got.InterviewNotes)
	assert.Equal(t, enum.OutcomeWaiting, got.Outcome)
	assert.Equal(t, "ask about the design org early", got.WhatILearned)
}

func TestUpdateFieldValidation(t *testing.T) {
	t.Parallel()

	controller, _, _ := setupTest(t)
	ctx := t.Context()

	app, err := controller.AddRow(ctx, "maya")
	require.NoError(t, err)

	_, err = controller.UpdateField(ctx, "maya", app.ID, "currentStage", "Ghosted")
	assert.ErrorIs(t, err, tracker.ErrInvalidFieldValue)

	_, err = controller.UpdateField(ctx, "maya", app.ID, "salary", "1cr")
	assert.ErrorIs(t, err, tracker.ErrUnknownField)

	_, err = controller.UpdateField(ctx, "maya", "no-such-id", "company", "Figma")
	assert.ErrorIs(t, err, tracker.ErrRowNotFound)
}

func TestCorruptPartitionFallsBackToEmpty(t *testing.T) {
	t.Parallel()

	controller, _, mr := setupTest(t)
	ctx := t.Context()

	require.NoError(t, mr.Set("colony:tracker:temp:maya", "{not json"))

	apps, err := controller.List(ctx, "maya")
	require.NoError(t, err)
	assert.Empty(t, apps)

	// The feature keeps working: the next add overwrites the corrupt blob.
	_, err = controller.AddRow(ctx, "maya")
	require.NoError(t, err)

	apps, err = controller.List(ctx, "maya")
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}
