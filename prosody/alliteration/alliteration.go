/*
Package alliteration finds alliterating words in Old Norse verse.

Old Norse stress falls on the first syllable of a word, so alliteration is
decided by the first sounds of words: words starting with the same
consonant alliterate, every vowel alliterates with every other vowel, and
the clusters sp, st and sk alliterate only with themselves.

The analyzer reports every alliterating pair of a verse, not just the
staves a strict metrical analysis would accept.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package alliteration

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/skald/phonology/sound"
	"github.com/npillmayer/skald/phonology/transcription"
)

// tracer traces with key 'skald.prosody'.
func tracer() tracing.Trace {
	return tracing.Select("skald.prosody")
}

// VowelHead is the head of words starting with a vowel.
const VowelHead = "V"

// Pair is a pair of alliterating words of a verse. I and J are the
// indices of the words within the verse, with I < J.
type Pair struct {
	First, Second string
	I, J          int
	Head          string
}

func (p Pair) String() string {
	return fmt.Sprintf("(%s,%s)", p.First, p.Second)
}

// Analyzer detects alliteration. It holds no mutable state.
type Analyzer struct {
	tr *transcription.Transcriber
}

// New creates an analyzer which uses a transcriber to find the first
// sounds of words.
func New(tr *transcription.Transcriber) *Analyzer {
	return &Analyzer{tr: tr}
}

// Head returns the alliterating onset of a word: VowelHead for words
// starting with a vowel, one of "sp", "st" or "sk" for these clusters,
// otherwise the phonetic symbol of the first consonant without length
// mark. Words without sounds have an empty head.
func (a *Analyzer) Head(word string) (string, error) {
	segments, err := a.tr.Segments(word)
	if err != nil || len(segments) == 0 {
		return "", err
	}
	first := segments[0]
	if first.Sound.IsVowel() {
		return VowelHead, nil
	}
	symbol := strings.TrimSuffix(first.Symbol, sound.LengthMark)
	if symbol == "s" && len(segments) > 1 {
		switch next := segments[1].Symbol; next {
		case "p", "t", "k":
			return symbol + next, nil
		}
	}
	return symbol, nil
}

// Pairs returns all pairs of alliterating words of a verse, ordered by the
// index of the first and then of the second word.
func (a *Analyzer) Pairs(words []string) ([]Pair, error) {
	heads := make([]string, len(words))
	for i, w := range words {
		h, err := a.Head(w)
		if err != nil {
			return nil, err
		}
		heads[i] = h
	}
	var pairs []Pair
	for i := 0; i < len(words); i++ {
		if heads[i] == "" {
			continue
		}
		for j := i + 1; j < len(words); j++ {
			if heads[j] == heads[i] {
				pairs = append(pairs, Pair{First: words[i], Second: words[j], I: i, J: j, Head: heads[i]})
			}
		}
	}
	tracer().Debugf("alliteration in %v: %v", words, pairs)
	return pairs, nil
}

// Verses returns the alliterating pairs for every verse.
func (a *Analyzer) Verses(verses [][]string) ([][]Pair, error) {
	result := make([][]Pair, len(verses))
	for k, words := range verses {
		pairs, err := a.Pairs(words)
		if err != nil {
			return nil, err
		}
		result[k] = pairs
	}
	return result, nil
}
