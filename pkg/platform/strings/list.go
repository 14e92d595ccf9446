// Package strings holds helpers for list-valued query parameters.
package strings

import "strings"

// SplitLower splits raw on sep and returns the trimmed, lowercased, distinct
// values in first-seen order. Blank input and blank items are dropped; nil is
// returned when nothing remains.
//
//	SplitLower(" Sale, mortgage,SALE,, ", ",") // []string{"sale", "mortgage"}
func SplitLower(raw, sep string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return dedupeFold(strings.Split(raw, sep))
}

func dedupeFold(values []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
