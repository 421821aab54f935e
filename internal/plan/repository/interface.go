package repository

import (
	"context"

	"mom-planner/internal/plan"
)

// Repository is the composed interface for the plan domain data store.
type Repository interface {
	SessionRepository
}

// SessionRepository stores live sessions. Sessions are mutated in place
// through their own methods; the store only tracks their lifetime.
type SessionRepository interface {
	CreateSession(ctx context.Context) (*plan.Session, error)
	GetSession(ctx context.Context, id string) (*plan.Session, error)
	ListSessions(ctx context.Context, opt ListSessionsOptions) ([]*plan.Session, error)
	DeleteSession(ctx context.Context, id string) error
}
