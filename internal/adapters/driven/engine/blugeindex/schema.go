package blugeindex

import "github.com/blugelabs/bluge/analysis"

// Field names of the poem schema, in schema order.
const (
	FieldTitle   = "title"
	FieldAuthor  = "author"
	FieldDynasty = "dynasty"
	FieldContent = "content"

	// fieldAll is the composite catch-all every document carries so a
	// bare keyword matches any of the four fields.
	fieldAll = "_all"

	// fieldID is the engine's document identity field, excluded from
	// the catch-all.
	fieldID = "_id"
)

// Schema is the fixed layout of a search document: the four text fields
// in the order title, author, dynasty, content, each stored and indexed
// with term positions under the CJK analyzer.
//
// A Schema is built once per Engine and shared by the read and write
// paths, so field handles stay stable for the life of the process.
// Handles are resolved by name, never by position.
type Schema struct {
	analyzer *analysis.Analyzer
	fields   []string
}

// NewSchema binds the poem field set to the given analyzer.
func NewSchema(analyzer *analysis.Analyzer) *Schema {
	return &Schema{
		analyzer: analyzer,
		fields:   []string{FieldTitle, FieldAuthor, FieldDynasty, FieldContent},
	}
}

// Fields returns the field handles in schema order.
func (s *Schema) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field resolves a field handle by name.
func (s *Schema) Field(name string) (string, bool) {
	for _, f := range s.fields {
		if f == name {
			return f, true
		}
	}
	return "", false
}

// Analyzer returns the analyzer bound to every schema field.
func (s *Schema) Analyzer() *analysis.Analyzer {
	return s.analyzer
}
