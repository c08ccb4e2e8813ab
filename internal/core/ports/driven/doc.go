// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CorpusLoader: Loads the poem corpus (embedded JSON or external file)
//   - IndexBuilder: Creates a fresh index and writes the corpus into it
//   - IndexSearcher: Opens an existing index read-only and runs queries
//   - ConfigStore: Persistent CLI defaults
//
// The full-text engine behind IndexBuilder/IndexSearcher is opaque: any
// implementation providing relevance-ordered retrieval over the four poem
// fields satisfies the contract. The core must not assume anything about
// its ranking formula beyond descending score with unspecified tie order.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
