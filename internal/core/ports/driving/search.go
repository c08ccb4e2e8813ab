package driving

import (
	"context"

	"github.com/wenxin-labs/shici-cli/internal/core/domain"
)

// SearchService runs keyword queries against an existing index.
type SearchService interface {
	// Search opens the index at path read-only and returns matching
	// poems in descending relevance order.
	Search(ctx context.Context, path, keyword string) ([]domain.Poem, error)
}
