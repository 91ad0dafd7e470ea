package orthography

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// Token is a word of a text, with byte offsets into the (normalized) text.
type Token struct {
	Text       string
	Start, End int
}

// Tokenizer splits a text into word tokens.
type Tokenizer interface {
	Tokenize(text string) []Token
}

// WordTokenizer is a Tokenizer following the UAX #29 word boundary rules.
// Whitespace is dropped, punctuation is kept as separate tokens.
// It normalizes text to NFC before segmenting; offsets refer to the
// normalized text.
type WordTokenizer struct{}

var _ Tokenizer = WordTokenizer{}

// Tokenize splits text into word and punctuation tokens.
func (WordTokenizer) Tokenize(text string) []Token {
	text = Normalize(text)
	words := segment.NewSegmenter(uax29.NewWordBreaker(1))
	words.Init(strings.NewReader(text))
	var tokens []Token
	pos := 0
	for words.Next() {
		word := words.Text()
		if len(word) == 0 {
			continue
		}
		end := pos + len(word)
		if !isspace(word) {
			tracer().Debugf("token %q at %d", word, pos)
			tokens = append(tokens, Token{Text: word, Start: pos, End: end})
		}
		pos = end
	}
	return tokens
}

// Words is a shortcut for tokenizing text with a WordTokenizer and keeping
// the token strings only.
func Words(text string) []string {
	tokens := WordTokenizer{}.Tokenize(text)
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}
	return words
}

func isspace(text string) bool {
	r, width := utf8.DecodeRuneInString(text)
	if width == 0 || r == utf8.RuneError {
		return false
	}
	return unicode.IsSpace(r)
}

// --- Punctuation -----------------------------------------------------------

// Punctuation is a set of punctuation characters to strip from tokens.
type Punctuation struct {
	marks *hashset.Set
}

// NewPunctuation creates a punctuation set from the runes of marks.
func NewPunctuation(marks string) Punctuation {
	set := hashset.New()
	for _, r := range marks {
		set.Add(r)
	}
	return Punctuation{marks: set}
}

// Contains is true if r is a punctuation mark of p.
func (p Punctuation) Contains(r rune) bool {
	return p.marks != nil && p.marks.Contains(r)
}

// Strip removes every punctuation mark of p from word.
func (p Punctuation) Strip(word string) string {
	return strings.Map(func(r rune) rune {
		if p.Contains(r) {
			return -1
		}
		return r
	}, word)
}

// StripAll strips punctuation from every word and drops words which
// become empty.
func (p Punctuation) StripAll(words []string) []string {
	stripped := make([]string, 0, len(words))
	for _, w := range words {
		if w = p.Strip(w); w != "" {
			stripped = append(stripped, w)
		}
	}
	return stripped
}
