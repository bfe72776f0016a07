package middleware

import (
	"context"
	"net/http"
)

type ctxKey int

const (
	subjectKey ctxKey = iota
	requestIDKey
)

// SetSubject stores the authenticated token subject.
func SetSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// Subject returns the authenticated subject, or "" when auth is disabled.
func Subject(r *http.Request) string {
	v, _ := r.Context().Value(subjectKey).(string)
	return v
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFrom(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}
