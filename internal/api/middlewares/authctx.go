package middlewares

import "context"

const adminSubjectKey ctxKey = 1

func WithAdminSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, adminSubjectKey, sub)
}

func AdminSubjectFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(adminSubjectKey).(string)
	return v, ok && v != ""
}
