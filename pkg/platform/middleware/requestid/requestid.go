package requestid

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"udaan/pkg/requestcontext"
)

// Header carries the request id in both directions.
const Header = "X-Request-ID"

// Middleware reuses an inbound X-Request-ID or mints a new UUID, stores it in
// the context and echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := strings.TrimSpace(r.Header.Get(Header))
		if reqID == "" || len(reqID) > 128 {
			reqID = uuid.NewString()
		}
		w.Header().Set(Header, reqID)
		next.ServeHTTP(w, r.WithContext(requestcontext.WithRequestID(r.Context(), reqID)))
	})
}
