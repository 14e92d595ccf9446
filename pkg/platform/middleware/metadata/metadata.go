package metadata

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"udaan/pkg/requestcontext"
)

// Resolver derives the client IP of a request. Forwarding headers are only
// read when the socket peer is one of the trusted proxies.
type Resolver struct {
	trusted []netip.Prefix
}

// NewResolver builds a Resolver from proxy addresses or CIDR ranges. An
// empty list trusts nobody, so only the socket peer is used.
func NewResolver(proxies []string) (*Resolver, error) {
	res := &Resolver{}
	for _, raw := range proxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.Contains(raw, "/") {
			p, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
			}
			res.trusted = append(res.trusted, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
		}
		addr = addr.Unmap()
		res.trusted = append(res.trusted, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return res, nil
}

// Middleware extracts client IP address and User-Agent from the request and
// adds them to the context. Apply early in the chain; the search rate
// limiter keys on the IP stored here.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithClientMetadata(r.Context(), res.ClientIP(r), r.Header.Get("User-Agent"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIP returns the originating client address. X-Forwarded-For is walked
// from the right, skipping trusted proxies, and the first untrusted hop wins.
// X-Real-IP is consulted only when a trusted peer sent no forwarded chain.
func (res *Resolver) ClientIP(r *http.Request) string {
	peer, ok := peerAddr(r.RemoteAddr)
	if !ok {
		if r.RemoteAddr == "" {
			return "unknown"
		}
		return r.RemoteAddr
	}
	if !res.trusts(peer) {
		return peer.String()
	}

	hops := forwardedHops(r.Header.Values("X-Forwarded-For"))
	if len(hops) == 0 {
		if xri, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
			return xri.Unmap().String()
		}
		return peer.String()
	}

	client := peer
	for i := len(hops) - 1; i >= 0; i-- {
		hop, err := netip.ParseAddr(hops[i])
		if err != nil {
			break
		}
		hop = hop.Unmap()
		if !res.trusts(hop) {
			return hop.String()
		}
		client = hop
	}
	return client.String()
}

func (res *Resolver) trusts(addr netip.Addr) bool {
	if res == nil {
		return false
	}
	for _, p := range res.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// ClientMetadata stores the socket peer as the client IP. Forwarding headers
// are ignored; use a Resolver with trusted proxies behind a load balancer.
func ClientMetadata(next http.Handler) http.Handler {
	return (&Resolver{}).Middleware(next)
}

// ClientIPFromRequest returns the socket peer address of r.
func ClientIPFromRequest(r *http.Request) string {
	return (&Resolver{}).ClientIP(r)
}

func peerAddr(remote string) (netip.Addr, bool) {
	host := remote
	if h, _, err := net.SplitHostPort(remote); err == nil {
		host = h
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func forwardedHops(values []string) []string {
	var hops []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if hop := strings.TrimSpace(part); hop != "" {
				hops = append(hops, hop)
			}
		}
	}
	return hops
}
