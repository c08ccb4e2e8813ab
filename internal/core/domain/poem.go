package domain

// Poem is the canonical corpus record.
// All four fields are non-empty strings in the shipped corpus; the tool
// trusts that invariant rather than enforcing it.
type Poem struct {
	// Title of the poem.
	Title string `json:"title"`

	// Author name.
	Author string `json:"author"`

	// Dynasty the poem was written in.
	Dynasty string `json:"dynasty"`

	// Content is the full poem text.
	Content string `json:"content"`
}

// Key returns the identity of a poem for dedup purposes.
// Two poems with the same title and author are the same poem, even if
// dynasty or content differ. This is a deliberate choice over full
// structural equality.
func (p Poem) Key() string {
	return p.Title + "\x00" + p.Author
}

// Same reports whether two poems share the (title, author) identity.
func (p Poem) Same(other Poem) bool {
	return p.Title == other.Title && p.Author == other.Author
}
