package orthography

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestLetters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skald.text")
	defer teardown()
	//
	assert.Equal(t, []string{"h", "j", "ǫ́", "l", "p"}, Letters("hjǫ́lp"))
	// decomposed 'á' is composed first
	assert.Equal(t, []string{"m", "á", "l"}, Letters("ma\u0301l"))
	assert.Nil(t, Letters(""))
	assert.Equal(t, "valföðr", Lower("Valföðr"))
}

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skald.text")
	defer teardown()
	//
	text := "Hljóðs bið ek allar, helgar kindir"
	tokens := WordTokenizer{}.Tokenize(text)
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = tok.Text
		assert.Equal(t, tok.Text, text[tok.Start:tok.End])
	}
	assert.Equal(t, []string{"Hljóðs", "bið", "ek", "allar", ",", "helgar", "kindir"}, words)
	assert.Equal(t, strings.Index(text, "helgar"), tokens[5].Start)
}

func TestPunctuation(t *testing.T) {
	p := NewPunctuation(",.;!?-:")
	assert.True(t, p.Contains(';'))
	assert.False(t, p.Contains('a'))
	assert.Equal(t, "allar", p.Strip("allar,"))
	words := p.StripAll(Words("Deyr fé, deyja frændr."))
	assert.Equal(t, []string{"Deyr", "fé", "deyja", "frændr"}, words)
	var empty Punctuation
	assert.Equal(t, "a,b", empty.Strip("a,b"))
}
