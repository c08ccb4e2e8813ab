package blugeindex

import (
	"context"
	"fmt"
	"os"

	"github.com/blugelabs/bluge"
	"github.com/blugelabs/bluge/index"
	queryStr "github.com/blugelabs/query_string"

	"github.com/wenxin-labs/shici-cli/internal/core/domain"
	"github.com/wenxin-labs/shici-cli/internal/core/ports/driven"
	"github.com/wenxin-labs/shici-cli/internal/logger"
)

// maxSearchResults caps how many ranked matches a single query
// materializes.
const maxSearchResults = 10_000

// Ensure Engine implements the interface.
var _ driven.Engine = (*Engine)(nil)

// Engine is the bluge-backed implementation of the index lifecycle.
// It holds the schema (and through it the tokenizer) built once at
// construction; both are re-applied to the engine config on every open,
// read or write, since the index itself persists no analyzer state.
type Engine struct {
	schema *Schema
}

// NewEngine creates an engine around the given tokenizer.
func NewEngine(tok *Tokenizer) *Engine {
	return &Engine{schema: NewSchema(tok.Analyzer())}
}

// Schema exposes the field layout, for callers that resolve handles.
func (e *Engine) Schema() *Schema {
	return e.schema
}

func (e *Engine) config(path string) bluge.Config {
	cfg := bluge.DefaultConfig(path)
	cfg.DefaultSearchField = fieldAll
	cfg.DefaultSearchAnalyzer = e.schema.analyzer
	return cfg
}

// CreateIndex wipes anything at path and opens a writer over a brand
// new empty index. Destructive and unconditional: re-indexing always
// means a full rebuild.
func (e *Engine) CreateIndex(path string) (driven.IndexBuilder, error) {
	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("wipe index directory: %w", err)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create index directory: %w", err)
	}

	writer, err := bluge.OpenWriter(e.config(path))
	if err != nil {
		return nil, fmt.Errorf("open index writer: %w", err)
	}

	logger.Debug("Created fresh index at %s", path)
	return &builder{schema: e.schema, writer: writer, batch: bluge.NewBatch()}, nil
}

// OpenIndex opens an existing index read-only.
func (e *Engine) OpenIndex(path string) (driven.IndexSearcher, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s (run the index command first)", domain.ErrIndexNotFound, path)
	}

	reader, err := bluge.OpenReader(e.config(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrIndexNotFound, path, err)
	}

	return &searcher{schema: e.schema, reader: reader}, nil
}

// builder stages documents into one batch and commits them atomically.
type builder struct {
	schema    *Schema
	writer    *bluge.Writer
	batch     *index.Batch
	committed bool
}

func (b *builder) Add(_ context.Context, poem domain.Poem) error {
	doc := b.schema.documentFromPoem(poem)
	b.batch.Update(doc.ID(), doc)
	return nil
}

// Commit applies the staged batch and closes the writer. The engine
// guarantees the batch lands all-or-nothing; an interrupt before this
// returns leaves no documents durably indexed.
func (b *builder) Commit(_ context.Context) error {
	if err := b.writer.Batch(b.batch); err != nil {
		return fmt.Errorf("apply batch: %w", err)
	}
	b.committed = true
	return b.writer.Close()
}

func (b *builder) Close() error {
	if b.committed {
		return nil
	}
	return b.writer.Close()
}

// searcher runs parsed keyword queries and materializes ranked poems.
type searcher struct {
	schema *Schema
	reader *bluge.Reader
}

func (s *searcher) Search(ctx context.Context, keyword string) ([]domain.Poem, error) {
	query, err := s.parseQuery(keyword)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrQuerySyntax, keyword, err)
	}

	dmi, err := s.reader.Search(ctx, bluge.NewTopNSearch(maxSearchResults, query))
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}

	// Matches arrive in descending score order; ties are ordered by
	// engine internals and must be treated as unspecified.
	poems := make([]domain.Poem, 0)
	next, err := dmi.Next()
	for err == nil && next != nil {
		stored := make(map[string]string, 4)
		err = next.VisitStoredFields(func(field string, value []byte) bool {
			if _, ok := s.schema.Field(field); ok {
				stored[field] = string(value)
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("read stored fields: %w", err)
		}

		poem, mapErr := s.schema.poemFromStored(stored)
		if mapErr != nil {
			return nil, mapErr
		}
		poems = append(poems, poem)

		next, err = dmi.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}

	logger.Debug("Query %q matched %d poems", keyword, len(poems))
	return poems, nil
}

// parseQuery turns the free-text keyword into an engine query. The
// default field is the catch-all, so a bare term matches if it appears
// in any of the four schema fields; field-scoped syntax (title:明月)
// still works.
func (s *searcher) parseQuery(keyword string) (bluge.Query, error) {
	opt := queryStr.DefaultOptions().WithDefaultAnalyzer(s.schema.analyzer)
	return queryStr.ParseQueryString(keyword, opt)
}

func (s *searcher) Close() error {
	return s.reader.Close()
}
