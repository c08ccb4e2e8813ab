package driven

import (
	"context"

	"github.com/wenxin-labs/shici-cli/internal/core/domain"
)

// CorpusLoader provides the poem corpus.
// Records are returned in corpus order and are immutable for the run.
// Input that is not a JSON array of four-string-field objects wraps
// domain.ErrCorpusFormat.
type CorpusLoader interface {
	Load(ctx context.Context) ([]domain.Poem, error)
}
