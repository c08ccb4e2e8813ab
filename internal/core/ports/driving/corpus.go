package driving

import (
	"context"

	"github.com/wenxin-labs/shici-cli/internal/core/domain"
)

// CorpusService provides in-memory operations over the loaded corpus:
// listing, uniform sampling without replacement, and frequency stats.
type CorpusService interface {
	// List returns up to limit poems in corpus order.
	// A limit <= 0 or beyond the corpus size returns the full corpus.
	List(ctx context.Context, limit int) ([]domain.Poem, error)

	// Random returns count poems sampled uniformly without replacement.
	// Count is clamped to the corpus size. An empty corpus yields an
	// empty result, not an error.
	Random(ctx context.Context, count int) ([]domain.Poem, error)

	// Stat computes the corpus total and per-author / per-dynasty
	// frequency tables, optionally sorted by count descending.
	Stat(ctx context.Context, sorted bool) (domain.Stat, error)
}
