package api

import (
	"context"

	"github.com/bookhavenapp/bookhaven-server/internal/domain"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const contextKeyUser contextKey = "user"

// setUser stores the authenticated user in context.
func setUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, contextKeyUser, user)
}

// getUser extracts the authenticated user from request context.
// Returns nil if not authenticated.
func getUser(ctx context.Context) *domain.User {
	if user, ok := ctx.Value(contextKeyUser).(*domain.User); ok {
		return user
	}
	return nil
}

// getUserID extracts the authenticated user ID from request context.
// Returns empty string if not authenticated.
func getUserID(ctx context.Context) string {
	if user := getUser(ctx); user != nil {
		return user.ID
	}
	return ""
}
