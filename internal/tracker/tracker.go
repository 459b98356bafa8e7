// Package tracker implements the personal application tracker's tiered
// persistence: anonymous owners write to a temporary partition capped at
// the free-tier limit, authenticated owners write to a permanent one,
// and the login transition migrates temporary rows exactly once.
package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/designerscolony/colony/internal/database/types/enum"
	"github.com/designerscolony/colony/internal/session"
	"github.com/google/uuid"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

const (
	tempKeyPrefix = "colony:tracker:temp:"
	permKeyPrefix = "colony:tracker:perm:"
)

// DefaultFreeTierLimit is the number of rows an anonymous owner may
// hold before the sign-in gate.
const DefaultFreeTierLimit = 3

var (
	// ErrFreeTierLimit rejects a new row at the anonymous ceiling. Not a
	// failure: the caller surfaces the sign-in gate.
	ErrFreeTierLimit = errors.New("free tier row limit reached, sign in to continue")
	// ErrFreeTierLocked rejects edits once the ceiling is hit; existing
	// rows are read-only until the owner signs in.
	ErrFreeTierLocked = errors.New("free tier rows are read-only at the limit, sign in to continue")
	// ErrRowNotFound means the application ID is not in the owner's partition.
	ErrRowNotFound = errors.New("application not found")
	// ErrUnknownField rejects an update to a field that doesn't exist.
	ErrUnknownField = errors.New("unknown application field")
	// ErrInvalidFieldValue rejects an enum value outside the known set.
	ErrInvalidFieldValue = errors.New("invalid value for field")
)

// Application is one tracked job application row, owned by exactly one
// session and stored in exactly one partition at any instant.
type Application struct {
	ID             string       `json:"id"`
	Company        string       `json:"company"`
	Role           string       `json:"role"`
	AppliedOn      string       `json:"appliedOn"`
	CurrentStage   enum.Stage   `json:"currentStage"`
	InterviewNotes string       `json:"interviewNotes"`
	Outcome        enum.Outcome `json:"outcome"`
	WhatILearned   string       `json:"whatILearned"`
}

// Controller chooses the partition by authentication state and persists
// the whole partition on every mutation. Row counts stay small, so
// write-through beats batching here.
type Controller struct {
	client   rueidis.Client
	sessions *session.Store
	limit    int
	logger   *zap.Logger
}

// NewController creates a tracker controller and subscribes it to the
// login transition for the one-way migration.
func NewController(client rueidis.Client, sessions *session.Store, limit int, logger *zap.Logger) *Controller {
	if limit <= 0 {
		limit = DefaultFreeTierLimit
	}

	c := &Controller{
		client:   client,
		sessions: sessions,
		limit:    limit,
		logger:   logger.Named("tracker"),
	}

	sessions.OnLogin(c.migrate)

	return c
}

// List returns the owner's rows from whichever partition their
// authentication state selects.
func (c *Controller) List(ctx context.Context, owner string) ([]Application, error) {
	key, _, err := c.activeKey(ctx, owner)
	if err != nil {
		return nil, err
	}

	return c.loadPartition(ctx, key)
}

// AddRow appends a fresh row with default stage and outcome. At the
// anonymous ceiling the request is rejected without touching storage.
func (c *Controller) AddRow(ctx context.Context, owner string) (*Application, error) {
	key, authenticated, err := c.activeKey(ctx, owner)
	if err != nil {
		return nil, err
	}

	apps, err := c.loadPartition(ctx, key)
	if err != nil {
		return nil, err
	}

	if !authenticated && len(apps) >= c.limit {
		return nil, ErrFreeTierLimit
	}

	app := Application{
		ID:           uuid.NewString(),
		CurrentStage: enum.StageApplied,
		Outcome:      enum.OutcomeWaiting,
	}

	apps = append(apps, app)

	if err := c.savePartition(ctx, key, apps); err != nil {
		return nil, err
	}

	return &app, nil
}

// UpdateField sets one field on one row and persists the partition.
// Anonymous rows become read-only once the ceiling is hit.
func (c *Controller) UpdateField(ctx context.Context, owner, id, field, value string) (*Application, error) {
	key, authenticated, err := c.activeKey(ctx, owner)
	if err != nil {
		return nil, err
	}

	apps, err := c.loadPartition(ctx, key)
	if err != nil {
		return nil, err
	}

	if !authenticated && len(apps) >= c.limit {
		return nil, ErrFreeTierLocked
	}

	for i := range apps {
		if apps[i].ID != id {
			continue
		}

		if err := setField(&apps[i], field, value); err != nil {
			return nil, err
		}

		if err := c.savePartition(ctx, key, apps); err != nil {
			return nil, err
		}

		return &apps[i], nil
	}

	return nil, ErrRowNotFound
}

// Delete removes one row and persists the partition. Subject to the
// same read-only policy as updates.
func (c *Controller) Delete(ctx context.Context, owner, id string) error {
	key, authenticated, err := c.activeKey(ctx, owner)
	if err != nil {
		return err
	}

	apps, err := c.loadPartition(ctx, key)
	if err != nil {
		return err
	}

	if !authenticated && len(apps) >= c.limit {
		return ErrFreeTierLocked
	}

	for i := range apps {
		if apps[i].ID != id {
			continue
		}

		apps = append(apps[:i], apps[i+1:]...)

		return c.savePartition(ctx, key, apps)
	}

	return ErrRowNotFound
}

// migrate moves all temporary rows into the permanent partition on the
// login edge: existing permanent rows first, migrated rows appended,
// temporary partition cleared. The session store guarantees at most one
// invocation per edge.
func (c *Controller) migrate(ctx context.Context, owner string) error {
	temp, err := c.loadPartition(ctx, tempKeyPrefix+owner)
	if err != nil {
		return err
	}

	if len(temp) == 0 {
		return nil
	}

	perm, err := c.loadPartition(ctx, permKeyPrefix+owner)
	if err != nil {
		return err
	}

	merged := append(perm, temp...)

	if err := c.savePartition(ctx, permKeyPrefix+owner, merged); err != nil {
		return err
	}

	err = c.client.Do(ctx, c.client.B().Del().Key(tempKeyPrefix+owner).Build()).Error()
	if err != nil {
		return fmt.Errorf("failed to clear temporary partition: %w", err)
	}

	c.logger.Info("Migrated tracker rows to permanent partition",
		zap.String("owner", owner),
		zap.Int("migrated", len(temp)),
		zap.Int("total", len(merged)))

	return nil
}

// activeKey resolves which partition the owner writes to right now.
func (c *Controller) activeKey(ctx context.Context, owner string) (string, bool, error) {
	authenticated, err := c.sessions.IsAuthenticated(ctx, owner)
	if err != nil {
		return "", false, err
	}

	if authenticated {
		return permKeyPrefix + owner, true, nil
	}

	return tempKeyPrefix + owner, false, nil
}

// loadPartition reads and decodes one partition. A corrupt payload is
// logged and treated as an empty partition rather than disabling the
// whole tracker.
func (c *Controller) loadPartition(ctx context.Context, key string) ([]Application, error) {
	resp := c.client.Do(ctx, c.client.B().Get().Key(key).Build())
	if err := resp.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to load tracker partition: %w", err)
	}

	data, err := resp.AsBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to load tracker partition: %w", err)
	}

	var apps []Application
	if err := sonic.Unmarshal(data, &apps); err != nil {
		c.logger.Error("Corrupt tracker partition, treating as empty",
			zap.String("key", key),
			zap.Error(err))

		return nil, nil
	}

	return apps, nil
}

// savePartition writes one whole partition back.
func (c *Controller) savePartition(ctx context.Context, key string, apps []Application) error {
	data, err := sonic.Marshal(apps)
	if err != nil {
		return fmt.Errorf("failed to encode tracker partition: %w", err)
	}

	err = c.client.Do(ctx, c.client.B().Set().Key(key).Value(string(data)).Build()).Error()
	if err != nil {
		return fmt.Errorf("failed to persist tracker partition: %w", err)
	}

	return nil
}

// setField applies one field update, validating enum fields.
func setField(app *Application, field, value string) error {
	switch field {
	case "company":
		app.Company = value
	case "role":
		app.Role = value
	case "appliedOn":
		app.AppliedOn = value
	case "currentStage":
		stage := enum.Stage(value)
		if !stage.IsValid() {
			return fmt.Errorf("%w %q: %q", ErrInvalidFieldValue, field, value)
		}

		app.CurrentStage = stage
	case "interviewNotes":
		app.InterviewNotes = value
	case "outcome":
		outcome := enum.Outcome(value)
		if !outcome.IsValid() {
			return fmt.Errorf("%w %q: %q", ErrInvalidFieldValue, field, value)
		}

		app.Outcome = outcome
	case "whatILearned":
		app.WhatILearned = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return nil
}
