package log

import "context"

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying id; loggers add it as the request_id field.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}
