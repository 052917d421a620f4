// Package appctx provides request-scoped context carriers (user, trace).
package appctx

import "context"

// UserContext holds the authenticated user for the current request.
type UserContext struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

// TraceContext holds request correlation identifiers.
type TraceContext struct {
	TraceID   string
	RequestID string
}

type userKey struct{}
type traceKey struct{}

// WithUser adds user context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUser returns user context or nil.
func GetUser(ctx context.Context) *UserContext {
	if u, ok := ctx.Value(userKey{}).(*UserContext); ok {
		return u
	}
	return nil
}

// WithTrace adds trace context.
func WithTrace(ctx context.Context, trace *TraceContext) context.Context {
	return context.WithValue(ctx, traceKey{}, trace)
}

// GetTrace returns trace context or nil.
func GetTrace(ctx context.Context) *TraceContext {
	if t, ok := ctx.Value(traceKey{}).(*TraceContext); ok {
		return t
	}
	return nil
}
