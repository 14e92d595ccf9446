package models

import (
	"strings"
	"time"
)

// Result is the outcome of a single rate limit check.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter int // seconds; set only when Allowed is false
}

// ExceededResponse is the 429 body returned to throttled search clients.
type ExceededResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	RetryAfter       int    `json:"retry_after"`
}

// SearchKey builds the bucket key for a client IP. Colons in IPv6 addresses
// are replaced so the key keeps exactly two segments.
func SearchKey(ip string) string {
	if ip == "" {
		ip = "unknown"
	}
	return "search:" + strings.ReplaceAll(ip, ":", "_")
}
