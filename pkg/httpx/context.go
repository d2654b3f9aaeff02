package httpx

import (
	"context"
	"net/http"
)

type ctxKey string

// CtxKeySubject holds the authenticated subject identifier (the acting user's
// id). Authentication middleware sets it; rate limiting keys off it.
const CtxKeySubject ctxKey = "subject"

// WithSubject returns a context carrying the authenticated subject id.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, CtxKeySubject, subject)
}

// SubjectKeyExtractor extracts the authenticated subject id from the request
// context. Returns empty string for unauthenticated requests.
func SubjectKeyExtractor(r *http.Request) string {
	if subject, ok := r.Context().Value(CtxKeySubject).(string); ok {
		return subject
	}
	return ""
}
