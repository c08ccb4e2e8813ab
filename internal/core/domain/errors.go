package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrCorpusFormat indicates the corpus input is not the expected
	// JSON array of poem records. Fatal before any index mutation.
	ErrCorpusFormat = errors.New("malformed corpus")

	// ErrIndexNotFound indicates a read-only open of a path that holds
	// no valid index. The user must run the index command first.
	ErrIndexNotFound = errors.New("index not found")

	// ErrQuerySyntax indicates the keyword query could not be parsed.
	ErrQuerySyntax = errors.New("invalid query syntax")

	// ErrSchemaViolation indicates a retrieved document is missing an
	// expected field. Not expected in normal operation; it means the
	// index is corrupt or was built against a different schema.
	ErrSchemaViolation = errors.New("document violates schema")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
