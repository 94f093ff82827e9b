package httpkit

import (
	"net/http"

	perrs "themewatch/internal/platform/errors"
	pnet "themewatch/internal/platform/net"
)

// header names the identity middleware reads
const (
	HeaderSessionID = "X-Session-ID"
	HeaderThemeID   = "X-Theme-ID"
)

// Session returns the dashboard session id from the request context
func Session(r *http.Request) (string, error) {
	sid := pnet.SessionID(r.Context())
	if sid == "" {
		return "", perrs.InvalidArgf("missing session id")
	}
	return sid, nil
}

// Theme returns the theme id from the request context
func Theme(r *http.Request) (string, error) {
	tid := pnet.ThemeID(r.Context())
	if tid == "" {
		return "", perrs.InvalidArgf("missing theme id")
	}
	return tid, nil
}

// MustSession returns the session id or panics
func MustSession(r *http.Request) string {
	sid, err := Session(r)
	if err != nil {
		panic(err)
	}
	return sid
}

// MustTheme returns the theme id or panics
// only use on routes protected by the identity middleware
func MustTheme(r *http.Request) string {
	tid, err := Theme(r)
	if err != nil {
		panic(err)
	}
	return tid
}
