package middleware

import (
	"net/http"

	pnet "themewatch/internal/platform/net"
)

// IdentityPort is a tiny seam that extracts caller identity from a request
type IdentityPort interface {
	// Parse returns a session id and theme id from the request or an error
	Parse(r *http.Request) (sessionID string, themeID string, err error)
}

// Identity is a no-op until wired. It uses the port when provided
func Identity(p IdentityPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			sid, tid, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithSession(r.Context(), sid)
			ctx = pnet.WithRequest(ctx, pnet.RequestID(ctx), tid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
