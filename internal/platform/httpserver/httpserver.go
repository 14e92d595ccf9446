package httpserver

import (
	"net/http"
	"time"

	"udaan/internal/platform/config"
)

const (
	defaultReadHeaderTimeout = 5 * time.Second
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 60 * time.Second
)

// New builds the portal HTTP server. Unset timeouts use the defaults above.
func New(addr string, handler http.Handler, t config.HTTPTimeouts) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: orDefault(t.ReadHeader, defaultReadHeaderTimeout),
		ReadTimeout:       orDefault(t.Read, defaultReadTimeout),
		WriteTimeout:      orDefault(t.Write, defaultWriteTimeout),
		IdleTimeout:       orDefault(t.Idle, defaultIdleTimeout),
	}
}

func orDefault(d, def time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return def
}
