package core

import (
	"fmt"
	"strings"
)

// =============================================================================
// Backend
// =============================================================================

// Backend names a Sequence implementation.
type Backend string

// Available backends.
const (
	// BackendLinked is the arena-backed singly linked list.
	BackendLinked Backend = "linked"
	// BackendStatic is the fixed-capacity array list.
	BackendStatic Backend = "static"
)

// Backends returns every known backend in display order.
func Backends() []Backend {
	return []Backend{BackendLinked, BackendStatic}
}

// String returns the backend name.
func (b Backend) String() string {
	return string(b)
}

// ParseBackend converts a string to a Backend, ignoring case.
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case BackendLinked, "":
		return BackendLinked, nil
	case BackendStatic:
		return BackendStatic, nil
	default:
		return "", fmt.Errorf("unknown backend %q (available: linked, static)", s)
	}
}

// =============================================================================
// Comparison
// =============================================================================

// Trait is one row of the static-versus-dynamic comparison.
type Trait struct {
	Name    string `json:"name"`
	Static  string `json:"static"`
	Dynamic string `json:"dynamic"`
}

// Comparison returns how a static array and a dynamic list differ.
func Comparison() []Trait {
	return []Trait{
		{Name: "Fixed size", Static: "yes", Dynamic: "no"},
		{Name: "Memory", Static: "preallocated", Dynamic: "allocated per node"},
		{Name: "Element access", Static: "direct, O(1) by index", Dynamic: "sequential, O(n)"},
		{Name: "Insert at front", Static: "O(n) shift, fails when full", Dynamic: "O(1)"},
		{Name: "Remove by value", Static: "O(n) scan + O(n) shift", Dynamic: "O(n) scan + O(1) unlink"},
	}
}
