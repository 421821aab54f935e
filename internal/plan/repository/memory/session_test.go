package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mom-planner/internal/plan"
	"mom-planner/internal/plan/repository"
	"mom-planner/pkg/log"
)

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	r := New(Options{}, log.NewNop())

	s, err := r.CreateSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	got, err := r.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = r.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, plan.ErrSessionNotFound)

	other, err := r.CreateSession(ctx)
	require.NoError(t, err)
	other.SetWatch(true)

	all, err := r.ListSessions(ctx, repository.ListSessionsOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	watching, err := r.ListSessions(ctx, repository.ListSessionsOptions{Watching: true})
	require.NoError(t, err)
	require.Len(t, watching, 1)
	assert.Equal(t, other.ID, watching[0].ID)

	require.NoError(t, r.DeleteSession(ctx, s.ID))
	assert.ErrorIs(t, r.DeleteSession(ctx, s.ID), plan.ErrSessionNotFound)
}

func TestSessionRepository_DuplicateID(t *testing.T) {
	ctx := context.Background()
	r := New(Options{}, log.NewNop()).(*implRepository)
	r.newID = func() string { return "fixed" }

	_, err := r.CreateSession(ctx)
	require.NoError(t, err)
	_, err = r.CreateSession(ctx)
	assert.ErrorIs(t, err, repository.ErrFailedToInsert)
}

func TestSessionRepository_EvictionCancelsGeneration(t *testing.T) {
	ctx := context.Background()
	r := New(Options{MaxSessions: 1, TTL: time.Hour}, log.NewNop())

	first, err := r.CreateSession(ctx)
	require.NoError(t, err)
	_, _ = first.SetText("tasks")
	_, genCtx, _, err := first.Begin(context.Background())
	require.NoError(t, err)

	_, err = r.CreateSession(ctx)
	require.NoError(t, err)

	assert.Error(t, genCtx.Err())
	assert.False(t, first.View().Form.Loading)
	_, err = r.GetSession(ctx, first.ID)
	assert.ErrorIs(t, err, plan.ErrSessionNotFound)
}
