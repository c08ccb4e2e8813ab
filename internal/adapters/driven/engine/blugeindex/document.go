package blugeindex

import (
	"fmt"

	"github.com/blugelabs/bluge"

	"github.com/wenxin-labs/shici-cli/internal/core/domain"
)

// documentFromPoem maps a poem onto a schema-shaped search document.
// Document identity is the (title, author) pair, so re-indexing the
// same poem replaces rather than duplicates it.
func (s *Schema) documentFromPoem(p domain.Poem) *bluge.Document {
	doc := bluge.NewDocument(p.Key())
	for _, field := range s.fields {
		doc.AddField(
			bluge.NewTextField(field, poemValue(p, field)).
				WithAnalyzer(s.analyzer).
				StoreValue().
				SearchTermPositions(),
		)
	}
	doc.AddField(bluge.NewCompositeFieldExcluding(fieldAll, []string{fieldID}))
	return doc
}

// poemFromStored is the inverse mapping, from the stored field values
// of a retrieved document. Every schema field must be present: the
// corpus invariant guarantees it for any document this tool wrote, so
// a gap means index corruption or schema drift and surfaces as
// domain.ErrSchemaViolation rather than a panic.
func (s *Schema) poemFromStored(stored map[string]string) (domain.Poem, error) {
	for _, field := range s.fields {
		if _, ok := stored[field]; !ok {
			return domain.Poem{}, fmt.Errorf("%w: stored document missing field %q", domain.ErrSchemaViolation, field)
		}
	}
	return domain.Poem{
		Title:   stored[FieldTitle],
		Author:  stored[FieldAuthor],
		Dynasty: stored[FieldDynasty],
		Content: stored[FieldContent],
	}, nil
}

func poemValue(p domain.Poem, field string) string {
	switch field {
	case FieldTitle:
		return p.Title
	case FieldAuthor:
		return p.Author
	case FieldDynasty:
		return p.Dynasty
	case FieldContent:
		return p.Content
	}
	return ""
}
