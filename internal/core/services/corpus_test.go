package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenxin-labs/shici-cli/internal/core/domain"
)

// --- Mock implementations ---

// mockCorpus implements driven.CorpusLoader for testing.
type mockCorpus struct {
	poems   []domain.Poem
	loadErr error
}

func (m *mockCorpus) Load(_ context.Context) ([]domain.Poem, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.poems, nil
}

func testPoems(n int) []domain.Poem {
	poems := make([]domain.Poem, 0, n)
	for i := 0; i < n; i++ {
		poems = append(poems, domain.Poem{
			Title:   string(rune('A' + i)),
			Author:  "author",
			Dynasty: "唐",
			Content: "content",
		})
	}
	return poems
}

func TestCorpusServiceList(t *testing.T) {
	tests := []struct {
		name      string
		corpus    int
		limit     int
		wantCount int
	}{
		{name: "limit within corpus", corpus: 5, limit: 3, wantCount: 3},
		{name: "limit beyond corpus returns all", corpus: 5, limit: 100, wantCount: 5},
		{name: "zero limit returns all", corpus: 5, limit: 0, wantCount: 5},
		{name: "negative limit returns all", corpus: 5, limit: -1, wantCount: 5},
		{name: "empty corpus", corpus: 0, limit: 10, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCorpusService(&mockCorpus{poems: testPoems(tt.corpus)})

			got, err := svc.List(context.Background(), tt.limit)

			require.NoError(t, err)
			assert.Len(t, got, tt.wantCount)
		})
	}
}

func TestCorpusServiceList_PreservesCorpusOrder(t *testing.T) {
	poems := testPoems(4)
	svc := NewCorpusService(&mockCorpus{poems: poems})

	got, err := svc.List(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, poems, got)
}

func TestCorpusServiceRandom_ExactCountNoDuplicates(t *testing.T) {
	svc := NewCorpusService(&mockCorpus{poems: testPoems(10)})
	svc.SetRand(rand.New(rand.NewSource(1)))

	got, err := svc.Random(context.Background(), 4)

	require.NoError(t, err)
	require.Len(t, got, 4)

	seen := make(map[string]struct{}, len(got))
	for _, p := range got {
		_, dup := seen[p.Key()]
		assert.False(t, dup, "sampling must be without replacement")
		seen[p.Key()] = struct{}{}
	}
}

func TestCorpusServiceRandom_FullCountIsPermutation(t *testing.T) {
	poems := testPoems(6)
	svc := NewCorpusService(&mockCorpus{poems: poems})
	svc.SetRand(rand.New(rand.NewSource(42)))

	got, err := svc.Random(context.Background(), len(poems))

	require.NoError(t, err)
	assert.ElementsMatch(t, poems, got)
}

func TestCorpusServiceRandom_CountClampedToCorpusSize(t *testing.T) {
	svc := NewCorpusService(&mockCorpus{poems: testPoems(3)})

	got, err := svc.Random(context.Background(), 99)

	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestCorpusServiceRandom_ZeroCount(t *testing.T) {
	svc := NewCorpusService(&mockCorpus{poems: testPoems(3)})

	got, err := svc.Random(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCorpusServiceRandom_EmptyCorpusIsNotAnError(t *testing.T) {
	svc := NewCorpusService(&mockCorpus{})

	got, err := svc.Random(context.Background(), 5)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCorpusServiceRandom_NegativeCount(t *testing.T) {
	svc := NewCorpusService(&mockCorpus{poems: testPoems(3)})

	_, err := svc.Random(context.Background(), -1)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCorpusServiceRandom_DoesNotMutateCorpusOrder(t *testing.T) {
	poems := testPoems(8)
	original := make([]domain.Poem, len(poems))
	copy(original, poems)

	svc := NewCorpusService(&mockCorpus{poems: poems})
	_, err := svc.Random(context.Background(), 8)

	require.NoError(t, err)
	assert.Equal(t, original, poems, "sampling shuffles a copy, not the corpus")
}

func TestCorpusServiceStat(t *testing.T) {
	poems := []domain.Poem{
		{Title: "A", Author: "X", Dynasty: "Tang", Content: "c1"},
		{Title: "B", Author: "X", Dynasty: "Song", Content: "c2"},
	}
	svc := NewCorpusService(&mockCorpus{poems: poems})

	stat, err := svc.Stat(context.Background(), true)

	require.NoError(t, err)
	assert.Equal(t, 2, stat.Total)
	assert.Equal(t, []domain.ValueCount{{Value: "X", Count: 2}}, stat.Authors)
	assert.ElementsMatch(t, []domain.ValueCount{
		{Value: "Song", Count: 1},
		{Value: "Tang", Count: 1},
	}, stat.Dynasties)
}

func TestCorpusServiceStat_CountsSumToTotal(t *testing.T) {
	poems := testPoems(7)
	poems[0].Author = "other"
	poems[3].Dynasty = "宋"
	svc := NewCorpusService(&mockCorpus{poems: poems})

	stat, err := svc.Stat(context.Background(), false)
	require.NoError(t, err)

	authorSum, dynastySum := 0, 0
	for _, vc := range stat.Authors {
		authorSum += vc.Count
	}
	for _, vc := range stat.Dynasties {
		dynastySum += vc.Count
	}
	assert.Equal(t, stat.Total, authorSum)
	assert.Equal(t, stat.Total, dynastySum)
}

func TestCorpusService_LoadErrorPropagates(t *testing.T) {
	loadErr := errors.New("corpus exploded")
	svc := NewCorpusService(&mockCorpus{loadErr: loadErr})
	ctx := context.Background()

	_, err := svc.List(ctx, 1)
	assert.ErrorIs(t, err, loadErr)

	_, err = svc.Random(ctx, 1)
	assert.ErrorIs(t, err, loadErr)

	_, err = svc.Stat(ctx, false)
	assert.ErrorIs(t, err, loadErr)
}
