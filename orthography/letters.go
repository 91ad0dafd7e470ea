package orthography

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var setupGraphemes sync.Once

// Normalize returns the NFC form of s.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Lower returns s normalized and lower-cased. Case mapping is
// language-neutral; historical languages have no special casing rules.
func Lower(s string) string {
	return cases.Lower(language.Und).String(Normalize(s))
}

// Letters splits a word into its orthographic letters, i.e. grapheme
// clusters of the NFC form of word.
func Letters(word string) []string {
	word = Normalize(word)
	if word == "" {
		return nil
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	splitter := segment.NewSegmenter(grapheme.NewBreaker(1))
	splitter.Init(strings.NewReader(word))
	letters := make([]string, 0, len(word))
	for splitter.Next() {
		letters = append(letters, splitter.Text())
	}
	return letters
}
