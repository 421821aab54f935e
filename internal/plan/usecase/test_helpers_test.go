package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"mom-planner/internal/plan/repository"
	"mom-planner/internal/plan/repository/memory"
	"mom-planner/pkg/llmprovider"
	"mom-planner/pkg/notify"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockProvider answers with text or err. When block is set it waits for the
// context before answering.
type mockProvider struct {
	mu       sync.Mutex
	text     string
	err      error
	block    bool
	started  chan struct{}
	requests []*llmprovider.Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.started != nil {
		m.started <- struct{}{}
	}
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Parts: []string{m.text}, ProviderName: "mock", ModelName: "mock-1"}, nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-1" }

func (m *mockProvider) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notify.Notification
	err  error
}

func (r *recordingNotifier) Notify(ctx context.Context, n notify.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, n)
	return nil
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

type fixture struct {
	uc       *implUseCase
	repo     repository.Repository
	provider *mockProvider
	gate     *notify.Gate
	notifier *recordingNotifier
}

func newFixture(t *testing.T, perm notify.Permission) *fixture {
	t.Helper()
	l := &mockLogger{}
	f := &fixture{
		repo:     memory.New(memory.Options{MaxSessions: 16, TTL: time.Hour}, l),
		provider: &mockProvider{},
		gate:     notify.NewGate(perm, true),
		notifier: &recordingNotifier{},
	}
	f.uc = New(f.repo, f.provider, f.gate, f.notifier, Config{
		Timeout:        time.Second,
		Icon:           "mom.png",
		MaxUploadBytes: 1 << 20,
	}, l)
	return f
}

const validPlan = `[
  {"time":"9:00 AM","task":"Review Chapter 4","category":"Productivity","duration":60,"notificationText":"Get it done."},
  {"time":"10:00 AM","task":"Stretch","category":"physical","duration":10,"notificationText":"Move."}
]`
