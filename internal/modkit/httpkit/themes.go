package httpkit

import (
	"net/http"

	pnet "themewatch/internal/platform/net"
)

// ThemePort validates the theme scope of a request
type ThemePort interface {
	Validate(r *http.Request, themeID string) error
}

// ThemeGuard is middleware that validates the theme ID from context using the port
func ThemeGuard(p ThemePort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			tid := pnet.ThemeID(r.Context())
			if err := p.Validate(r, tid); err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
