package api

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type keyType string

const (
	userIDKey    keyType = "userID"
	userEmailKey keyType = "userEmail"
)

// ctxWithUser adds the authenticated admin's identity to the context
func ctxWithUser(ctx context.Context, userID uuid.UUID, email string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userEmailKey, email)
}

// ctxGetUserID retrieves the authenticated admin's ID from the context
func ctxGetUserID(ctx context.Context) (uuid.UUID, error) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return uuid.Nil, errors.New("no authenticated user in context")
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID in context has wrong type")
	}
	return userID, nil
}

// isAdminRequest reports whether the request carries a verified session.
func isAdminRequest(ctx context.Context) bool {
	_, err := ctxGetUserID(ctx)
	return err == nil
}
