// Package core defines the shared language of the dynlist system.
//
// This package contains:
//   - The Sequence interface every list backend satisfies
//   - Backend names used by configuration and the CLI
//   - The comparison between static arrays and dynamic lists
//   - ErrAllocationFailure, the only data-structure error
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
