package blugeindex

import (
	"unicode"
	"unicode/utf8"

	"github.com/blugelabs/bluge/analysis"
	"github.com/blugelabs/bluge/analysis/token"
	"github.com/huichen/sego"
)

// Mode selects how the tokenizer splits text.
type Mode int

const (
	// ModeCodepoint emits one token per CJK codepoint and groups runs
	// of ASCII letters and digits into single tokens. This is the
	// production configuration; switching an existing index to
	// dictionary segmentation changes its search granularity.
	ModeCodepoint Mode = iota

	// ModeDictionary consults the sego dictionary for CJK word
	// segmentation. Not reachable from the CLI; used by tests and kept
	// for corpora that ship a dictionary.
	ModeDictionary
)

// Tokenizer adapts the sego CJK segmentation engine to the bluge
// analysis chain. The same tokenizer instance must back both the write
// and the read path of an index, and it is handed to the engine again
// on every open: nothing about the analyzer is persisted inside the
// index.
type Tokenizer struct {
	seg  sego.Segmenter
	mode Mode
}

var _ analysis.Tokenizer = (*Tokenizer)(nil)

// NewTokenizer returns the production tokenizer: empty dictionary,
// codepoint mode.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{mode: ModeCodepoint}
}

// NewDictionaryTokenizer returns a tokenizer backed by a sego
// dictionary file ("word frequency pos" per line).
func NewDictionaryTokenizer(dictPath string) *Tokenizer {
	t := &Tokenizer{mode: ModeDictionary}
	t.seg.LoadDictionary(dictPath)
	return t
}

// Analyzer wraps the tokenizer into the analyzer registered with the
// engine for both indexing and query parsing.
func (t *Tokenizer) Analyzer() *analysis.Analyzer {
	return &analysis.Analyzer{
		Tokenizer:    t,
		TokenFilters: []analysis.TokenFilter{token.NewLowerCaseFilter()},
	}
}

// Tokenize splits input into a bluge token stream.
func (t *Tokenizer) Tokenize(input []byte) analysis.TokenStream {
	if t.mode == ModeDictionary {
		return t.tokenizeDictionary(input)
	}
	return tokenizeCodepoints(input)
}

func (t *Tokenizer) tokenizeDictionary(input []byte) analysis.TokenStream {
	segments := t.seg.Segment(input)
	stream := make(analysis.TokenStream, 0, len(segments))
	for _, s := range segments {
		text := s.Token().Text()
		if !keepTerm(text) {
			continue
		}
		stream = append(stream, &analysis.Token{
			Term:         []byte(text),
			Start:        s.Start(),
			End:          s.End(),
			PositionIncr: 1,
			Type:         termType(text),
		})
	}
	return stream
}

// tokenizeCodepoints is the empty-dictionary fallback: each ideograph
// is its own token, consecutive ASCII letters/digits form one token,
// everything else (whitespace, punctuation) separates tokens.
func tokenizeCodepoints(input []byte) analysis.TokenStream {
	stream := make(analysis.TokenStream, 0, utf8.RuneCount(input))

	runStart := -1
	flushRun := func(end int) {
		if runStart < 0 {
			return
		}
		stream = append(stream, &analysis.Token{
			Term:         input[runStart:end],
			Start:        runStart,
			End:          end,
			PositionIncr: 1,
			Type:         analysis.AlphaNumeric,
		})
		runStart = -1
	}

	for i := 0; i < len(input); {
		r, size := utf8.DecodeRune(input[i:])
		switch {
		case isIdeograph(r):
			flushRun(i)
			stream = append(stream, &analysis.Token{
				Term:         input[i : i+size],
				Start:        i,
				End:          i + size,
				PositionIncr: 1,
				Type:         analysis.Ideographic,
			})
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if runStart < 0 {
				runStart = i
			}
		default:
			flushRun(i)
		}
		i += size
	}
	flushRun(len(input))

	return stream
}

// isIdeograph covers the scripts segmented per codepoint: Han plus the
// Japanese kana ranges that behave the same way in search.
func isIdeograph(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r)
}

// keepTerm drops segments that are pure whitespace or punctuation.
func keepTerm(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func termType(text string) analysis.TokenType {
	r, _ := utf8.DecodeRuneInString(text)
	if isIdeograph(r) {
		return analysis.Ideographic
	}
	return analysis.AlphaNumeric
}
