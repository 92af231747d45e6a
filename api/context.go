package api

import (
	"context"
)

type keyType string

const userEmailKey keyType = "userEmail"

// ctxWithUserEmail adds the authenticated account's email to the context
func ctxWithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}
