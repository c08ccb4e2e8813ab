// Package domain defines the core business entities for shici.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Poem: A corpus record (title, author, dynasty, content)
//   - Stat: A transient frequency aggregate over the corpus
//   - ValueCount: One entry of a frequency table
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
