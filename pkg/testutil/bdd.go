package testutil

import "testing"

// Given, When and Then nest subtests so scenarios read as sentences in
// `go test -v` output, e.g. "Given_a_stored_entity/When_.../Then_...".
func Given(t *testing.T, desc string, fn func(t *testing.T)) { step(t, "Given", desc, fn) }

func When(t *testing.T, desc string, fn func(t *testing.T)) { step(t, "When", desc, fn) }

func Then(t *testing.T, desc string, fn func(t *testing.T)) { step(t, "Then", desc, fn) }

func step(t *testing.T, keyword, desc string, fn func(t *testing.T)) {
	t.Helper()
	if !t.Run(keyword+" "+desc, fn) {
		t.Logf("%s step failed: %s", keyword, desc)
	}
}
