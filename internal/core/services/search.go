package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/wenxin-labs/shici-cli/internal/core/domain"
	"github.com/wenxin-labs/shici-cli/internal/core/ports/driven"
	"github.com/wenxin-labs/shici-cli/internal/core/ports/driving"
	"github.com/wenxin-labs/shici-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs keyword queries against an existing index.
type SearchService struct {
	engine driven.Engine
}

// NewSearchService creates a new search service.
func NewSearchService(engine driven.Engine) *SearchService {
	return &SearchService{engine: engine}
}

// Search opens the index at path read-only and runs keyword as a
// free-text query across all poem fields.
func (s *SearchService) Search(ctx context.Context, path, keyword string) ([]domain.Poem, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", keyword)

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%w: empty keyword", domain.ErrInvalidInput)
	}

	searcher, err := s.engine.OpenIndex(path)
	if err != nil {
		return nil, fmt.Errorf("open index at %s: %w", path, err)
	}
	defer searcher.Close()

	poems, err := searcher.Search(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", keyword, err)
	}

	logger.Info("Results: %d", len(poems))
	return poems, nil
}
