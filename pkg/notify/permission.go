package notify

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Permission mirrors the three notification permission states.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// ParsePermission validates a configured permission value.
func ParsePermission(s string) (Permission, error) {
	switch p := Permission(strings.ToLower(strings.TrimSpace(s))); p {
	case PermissionDefault, PermissionGranted, PermissionDenied:
		return p, nil
	case "":
		return PermissionDefault, nil
	default:
		return "", fmt.Errorf("notify: unknown permission %q", s)
	}
}

// Tooltip is the hint shown next to the notification control.
func (p Permission) Tooltip() string {
	switch p {
	case PermissionDenied:
		return "Notifications blocked. Please enable them in your browser settings."
	case PermissionDefault:
		return "Click to enable and send a test notification"
	default:
		return "Send a test notification"
	}
}

// PermissionGate reports and requests notification permission.
type PermissionGate interface {
	State() Permission
	// Request asks the user once. It only changes a default state.
	Request(ctx context.Context) (Permission, error)
}

// Gate is an in-process PermissionGate whose answer to a request is fixed
// by configuration.
type Gate struct {
	mu             sync.RWMutex
	state          Permission
	grantOnRequest bool
}

// NewGate creates a gate in the given initial state.
func NewGate(initial Permission, grantOnRequest bool) *Gate {
	if initial == "" {
		initial = PermissionDefault
	}
	return &Gate{state: initial, grantOnRequest: grantOnRequest}
}

func (g *Gate) State() Permission {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

func (g *Gate) Request(ctx context.Context) (Permission, error) {
	if err := ctx.Err(); err != nil {
		return g.State(), err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != PermissionDefault {
		return g.state, nil
	}
	if g.grantOnRequest {
		g.state = PermissionGranted
	} else {
		g.state = PermissionDenied
	}
	return g.state, nil
}

// Set overrides the state, e.g. after the user changes their settings.
func (g *Gate) Set(p Permission) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = p
}

// PromptGate asks through a callback, typically an interactive terminal prompt.
type PromptGate struct {
	mu     sync.Mutex
	state  Permission
	prompt func(ctx context.Context) (bool, error)
}

// NewPromptGate creates a gate that calls prompt on the first request.
func NewPromptGate(prompt func(ctx context.Context) (bool, error)) *PromptGate {
	return &PromptGate{state: PermissionDefault, prompt: prompt}
}

func (g *PromptGate) State() Permission {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *PromptGate) Request(ctx context.Context) (Permission, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != PermissionDefault {
		return g.state, nil
	}

	ok, err := g.prompt(ctx)
	if err != nil {
		return g.state, err
	}
	if ok {
		g.state = PermissionGranted
	} else {
		g.state = PermissionDenied
	}
	return g.state, nil
}
