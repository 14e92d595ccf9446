package testutil

import (
	"net/http"

	"udaan/pkg/requestcontext"
)

// WithClientIP sets the client IP the metadata middleware would have stored.
func WithClientIP(req *http.Request, ip string) *http.Request {
	return req.WithContext(requestcontext.WithClientMetadata(req.Context(), ip, req.UserAgent()))
}
