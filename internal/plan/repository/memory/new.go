package memory

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"mom-planner/internal/plan"
	"mom-planner/internal/plan/repository"
	"mom-planner/pkg/log"
)

const (
	defaultMaxSessions = 1000
	defaultTTL         = 12 * time.Hour
)

type implRepository struct {
	cache *expirable.LRU[string, *plan.Session]
	newID func() string
	now   func() time.Time
	l     log.Logger
}

// Options tunes the in-memory store.
type Options struct {
	MaxSessions int
	TTL         time.Duration
}

// New creates an in-memory, expiring session Repository.
func New(opt Options, l log.Logger) repository.Repository {
	if opt.MaxSessions <= 0 {
		opt.MaxSessions = defaultMaxSessions
	}
	if opt.TTL <= 0 {
		opt.TTL = defaultTTL
	}

	r := &implRepository{
		newID: newSessionID,
		now:   time.Now,
		l:     l,
	}
	r.cache = expirable.NewLRU[string, *plan.Session](opt.MaxSessions, r.onEvict, opt.TTL)
	return r
}

// onEvict aborts any generation still running for an expired session.
func (r *implRepository) onEvict(id string, s *plan.Session) {
	s.Cancel()
}

func (r *implRepository) scope(method string) string {
	return fmt.Sprintf("plan/repository/memory.%s", method)
}
