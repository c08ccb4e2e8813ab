package driving

import "context"

// IndexService rebuilds the on-disk index from the corpus.
type IndexService interface {
	// Rebuild wipes any index at path and indexes the whole corpus
	// into a fresh one, committing once. Returns the number of poems
	// indexed.
	Rebuild(ctx context.Context, path string) (int, error)
}
