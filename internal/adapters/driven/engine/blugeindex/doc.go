// Package blugeindex adapts the bluge full-text engine to the driven
// index ports. It owns the poem field schema, the CJK tokenizer wiring,
// the poem/document mapping, and the index lifecycle (destructive
// create, read-only open, single-batch commit, ranked search).
//
// Everything under the index path on disk belongs to bluge; this
// package only drives create/open/insert/commit/search.
package blugeindex
