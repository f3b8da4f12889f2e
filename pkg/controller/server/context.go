package server

import (
	"context"

	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

type ctxUserIDKey struct{}

func withUserID(ctx context.Context, id types.UserID) context.Context {
	return context.WithValue(ctx, ctxUserIDKey{}, id)
}

func userIDFrom(ctx context.Context) types.UserID {
	if id, ok := ctx.Value(ctxUserIDKey{}).(types.UserID); ok {
		return id
	}
	return ""
}
