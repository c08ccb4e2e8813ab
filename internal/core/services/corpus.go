package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/wenxin-labs/shici-cli/internal/core/domain"
	"github.com/wenxin-labs/shici-cli/internal/core/ports/driven"
	"github.com/wenxin-labs/shici-cli/internal/core/ports/driving"
	"github.com/wenxin-labs/shici-cli/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService provides list, random sampling and frequency stats over
// the in-memory corpus. No index is involved; the corpus is reloaded on
// every call and discarded when the process exits.
type CorpusService struct {
	corpus driven.CorpusLoader
	rng    *rand.Rand
}

// NewCorpusService creates a new corpus service.
func NewCorpusService(corpus driven.CorpusLoader) *CorpusService {
	return &CorpusService{
		corpus: corpus,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRand replaces the sampling source. Useful for deterministic tests.
func (s *CorpusService) SetRand(rng *rand.Rand) {
	s.rng = rng
}

// List returns up to limit poems in corpus order.
func (s *CorpusService) List(ctx context.Context, limit int) ([]domain.Poem, error) {
	poems, err := s.corpus.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	if limit <= 0 || limit > len(poems) {
		return poems, nil
	}
	return poems[:limit], nil
}

// Random samples count poems uniformly without replacement by shuffling
// a copy of the corpus and taking the head. Count is clamped to the
// corpus size; sampling the whole corpus yields a permutation of it.
func (s *CorpusService) Random(ctx context.Context, count int) ([]domain.Poem, error) {
	poems, err := s.corpus.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	if len(poems) == 0 {
		logger.Debug("Empty corpus, nothing to sample")
		return nil, nil
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", domain.ErrInvalidInput, count)
	}
	if count > len(poems) {
		count = len(poems)
	}

	sampled := make([]domain.Poem, len(poems))
	copy(sampled, poems)
	s.rng.Shuffle(len(sampled), func(i, j int) {
		sampled[i], sampled[j] = sampled[j], sampled[i]
	})
	return sampled[:count], nil
}

// Stat computes the corpus total and per-author / per-dynasty frequency
// tables.
func (s *CorpusService) Stat(ctx context.Context, sorted bool) (domain.Stat, error) {
	poems, err := s.corpus.Load(ctx)
	if err != nil {
		return domain.Stat{}, fmt.Errorf("load corpus: %w", err)
	}

	authors := make([]string, 0, len(poems))
	dynasties := make([]string, 0, len(poems))
	for _, p := range poems {
		authors = append(authors, p.Author)
		dynasties = append(dynasties, p.Dynasty)
	}

	logger.Debug("Stat over %d poems", len(poems))
	return domain.Stat{
		Total:     len(poems),
		Authors:   domain.CountValues(authors, sorted),
		Dynasties: domain.CountValues(dynasties, sorted),
	}, nil
}
