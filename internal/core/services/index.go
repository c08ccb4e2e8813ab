package services

import (
	"context"
	"fmt"

	"github.com/wenxin-labs/shici-cli/internal/core/ports/driven"
	"github.com/wenxin-labs/shici-cli/internal/core/ports/driving"
	"github.com/wenxin-labs/shici-cli/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// IndexService builds a fresh full-text index from the corpus.
type IndexService struct {
	corpus driven.CorpusLoader
	engine driven.Engine
}

// NewIndexService creates a new index service.
func NewIndexService(corpus driven.CorpusLoader, engine driven.Engine) *IndexService {
	return &IndexService{corpus: corpus, engine: engine}
}

// Rebuild wipes any index at path and indexes the whole corpus into a
// fresh one. The corpus is loaded and validated before the old index is
// touched, so a malformed corpus never destroys an existing index.
// All documents go into a single commit; an interrupted run leaves
// nothing durably indexed.
func (s *IndexService) Rebuild(ctx context.Context, path string) (int, error) {
	logger.Section("Index Rebuild")

	poems, err := s.corpus.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load corpus: %w", err)
	}
	logger.Debug("Corpus loaded: %d poems", len(poems))

	builder, err := s.engine.CreateIndex(path)
	if err != nil {
		return 0, fmt.Errorf("create index at %s: %w", path, err)
	}
	defer builder.Close()

	for i, poem := range poems {
		if err := builder.Add(ctx, poem); err != nil {
			return 0, fmt.Errorf("index poem %q: %w", poem.Title, err)
		}
		if (i+1)%1000 == 0 {
			logger.Debug("Staged %d/%d poems", i+1, len(poems))
		}
	}

	if err := builder.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit index: %w", err)
	}

	logger.Info("Indexed %d poems at %s", len(poems), path)
	return len(poems), nil
}
