package api

import (
	"context"
)

type keyType string

const identityEmailKey keyType = "identityEmail"

// ctxWithIdentityEmail records the verified caller email on the context.
func ctxWithIdentityEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, identityEmailKey, email)
}

// identityEmailFromCtx retrieves the verified caller email, if any.
func identityEmailFromCtx(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(identityEmailKey).(string)
	return email, ok
}
