// Package httpkit provides tiny HTTP helpers and adapters
package httpkit

import (
	"net/http"
	"strings"

	perrs "themewatch/internal/platform/errors"
)

// ValidateFunc checks a session and theme pair before a request proceeds
// httpkit does not care about session storage, callers decide what is valid
type ValidateFunc func(sessionID, themeID string) error

// Port implements middleware.IdentityPort by reading the identity headers
// and delegating to an optional ValidateFunc
type Port struct {
	validate ValidateFunc
}

// NewPortFunc builds a Port from a simple validator function
// a nil validator accepts any ids including empty ones
func NewPortFunc(fn ValidateFunc) *Port {
	return &Port{validate: fn}
}

// Parse extracts session and theme ids from the identity headers
// absent headers yield empty ids, the validator decides whether that is fatal
func (p *Port) Parse(r *http.Request) (string, string, error) {
	sid := strings.TrimSpace(r.Header.Get(HeaderSessionID))
	tid := strings.TrimSpace(r.Header.Get(HeaderThemeID))

	if p == nil || p.validate == nil {
		return sid, tid, nil
	}
	if err := p.validate(sid, tid); err != nil {
		if perrs.CodeOf(err) != perrs.ErrorCodeUnknown {
			return "", "", err
		}
		return "", "", perrs.Unauthorizedf("invalid session")
	}
	return sid, tid, nil
}
