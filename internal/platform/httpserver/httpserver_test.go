package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"udaan/internal/platform/config"
)

func TestNewAppliesTimeouts(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		srv := New(":5000", http.NotFoundHandler(), config.HTTPTimeouts{})
		assert.Equal(t, ":5000", srv.Addr)
		assert.Equal(t, defaultReadHeaderTimeout, srv.ReadHeaderTimeout)
		assert.Equal(t, defaultReadTimeout, srv.ReadTimeout)
		assert.Equal(t, defaultWriteTimeout, srv.WriteTimeout)
		assert.Equal(t, defaultIdleTimeout, srv.IdleTimeout)
	})

	t.Run("configured values win", func(t *testing.T) {
		srv := New(":5000", http.NotFoundHandler(), config.HTTPTimeouts{Write: 2 * time.Minute, Idle: -time.Second})
		assert.Equal(t, 2*time.Minute, srv.WriteTimeout)
		assert.Equal(t, defaultIdleTimeout, srv.IdleTimeout)
	})
}
