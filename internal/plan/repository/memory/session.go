package memory

import (
	"context"

	"github.com/google/uuid"

	"mom-planner/internal/plan"
	"mom-planner/internal/plan/repository"
)

func newSessionID() string {
	return uuid.NewString()
}

func (r *implRepository) CreateSession(ctx context.Context) (*plan.Session, error) {
	id := r.newID()
	if _, exists := r.cache.Peek(id); exists {
		r.l.Errorf(ctx, "%s: duplicate id %s", r.scope("CreateSession"), id)
		return nil, repository.ErrFailedToInsert
	}

	s := plan.NewSession(id, r.now())
	r.cache.Add(id, s)
	return s, nil
}

// GetSession returns the session and renews its expiry.
func (r *implRepository) GetSession(ctx context.Context, id string) (*plan.Session, error) {
	s, ok := r.cache.Get(id)
	if !ok {
		return nil, plan.ErrSessionNotFound
	}
	r.cache.Add(id, s)
	return s, nil
}

func (r *implRepository) ListSessions(ctx context.Context, opt repository.ListSessionsOptions) ([]*plan.Session, error) {
	all := r.cache.Values()
	out := make([]*plan.Session, 0, len(all))
	for _, s := range all {
		if opt.Watching && !s.Watching() {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	if !r.cache.Remove(id) {
		return plan.ErrSessionNotFound
	}
	return nil
}
