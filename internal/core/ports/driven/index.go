package driven

import (
	"context"

	"github.com/wenxin-labs/shici-cli/internal/core/domain"
)

// Engine is the lifecycle contract to the external full-text engine.
// The on-disk format under an index path is owned entirely by the engine
// and treated as opaque here.
type Engine interface {
	// CreateIndex wipes anything at path and binds a brand-new empty
	// index to the poem schema. Destructive and unconditional.
	CreateIndex(path string) (IndexBuilder, error)

	// OpenIndex opens an existing index at path read-only. A missing
	// or invalid index wraps domain.ErrIndexNotFound.
	OpenIndex(path string) (IndexSearcher, error)
}

// IndexBuilder is the write-side contract to the external full-text engine.
// Opening a builder always wipes any prior index at the target path; a
// rebuild is full and destructive, never incremental.
type IndexBuilder interface {
	// Add stages one poem for indexing. Staged poems are not visible
	// to searches until Commit.
	Add(ctx context.Context, poem domain.Poem) error

	// Commit durably writes all staged poems in a single batch and
	// releases the writer. All-or-nothing: if the process dies before
	// Commit returns, nothing is indexed.
	Commit(ctx context.Context) error

	// Close releases the writer without committing staged poems.
	// A no-op after Commit.
	Close() error
}

// IndexSearcher is the read-side contract to the external full-text engine.
type IndexSearcher interface {
	// Search parses keyword as a free-text query over all poem fields
	// and returns matching poems in descending relevance order. Tie
	// order between equal scores is engine-internal and unspecified.
	// An unparseable keyword wraps domain.ErrQuerySyntax.
	Search(ctx context.Context, keyword string) ([]domain.Poem, error)

	// Close releases the reader.
	Close() error
}
