package testutil

import "testing"

// Given, When, Then and And name nested subtests so scenario output reads as
// a sentence in `go test -v`.
func Given(t *testing.T, context string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Given "+context, fn)
}

func When(t *testing.T, action string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("When "+action, fn)
}

func Then(t *testing.T, outcome string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Then "+outcome, fn)
}

func And(t *testing.T, outcome string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("And "+outcome, fn)
}
