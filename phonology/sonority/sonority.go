/*
Package sonority ranks orthographic letters by their sonority.

A Hierarchy is a list of tiers of letters, the most sonorous tier first.
Letters of tier 0 are syllable nuclei. Syllabification uses the ranks of
neighbouring letters to find syllable boundaries.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sonority

import (
	"fmt"
	"strings"

	"github.com/npillmayer/skald/orthography"
)

// Hierarchy is an ordered ranking of letter classes, most sonorous first.
// Hierarchies are immutable after creation.
type Hierarchy struct {
	name  string
	tiers [][]string
	rank  map[string]int
}

// New creates a hierarchy from tiers of letters. A letter appearing in
// more than one tier is ranked by its first occurrence.
func New(name string, tiers ...[]string) *Hierarchy {
	h := &Hierarchy{name: name, rank: make(map[string]int)}
	for i, tier := range tiers {
		t := make([]string, 0, len(tier))
		for _, letter := range tier {
			letter = orthography.Normalize(letter)
			t = append(t, letter)
			if _, ok := h.rank[letter]; !ok {
				h.rank[letter] = i
			}
		}
		h.tiers = append(h.tiers, t)
	}
	return h
}

// FromStrings creates a hierarchy with every tier given as a string of
// letters, e.g. FromStrings("x", "aeiou", "jw", "r").
func FromStrings(name string, tiers ...string) *Hierarchy {
	t := make([][]string, len(tiers))
	for i, s := range tiers {
		t[i] = orthography.Letters(s)
	}
	return New(name, t...)
}

// Name returns the name of the hierarchy.
func (h *Hierarchy) Name() string {
	return h.name
}

// Depth is the number of tiers.
func (h *Hierarchy) Depth() int {
	return len(h.tiers)
}

// Tier returns the letters of tier i.
func (h *Hierarchy) Tier(i int) []string {
	if i < 0 || i >= len(h.tiers) {
		return nil
	}
	return h.tiers[i]
}

// Rank returns the tier index of a letter. The second return value is
// false for letters which are not part of the hierarchy.
func (h *Hierarchy) Rank(letter string) (int, bool) {
	r, ok := h.rank[letter]
	return r, ok
}

// IsNucleus is true for letters of the most sonorous tier.
func (h *Hierarchy) IsNucleus(letter string) bool {
	r, ok := h.rank[letter]
	return ok && r == 0
}

func (h *Hierarchy) String() string {
	var b strings.Builder
	b.WriteString(h.name)
	for i, t := range h.tiers {
		fmt.Fprintf(&b, " %d:%s", i, strings.Join(t, ""))
	}
	return b.String()
}

// --- Predefined hierarchies ------------------------------------------------

// OldNorse is the hierarchy for Old Norse in normalized orthography.
var OldNorse = New("non",
	[]string{"a", "á", "æ", "e", "é", "i", "í", "o", "ǫ", "ǫ́", "ø", "ö", "œ", "ó", "u", "ú", "y", "ý"},
	[]string{"j"},
	[]string{"m"},
	[]string{"n"},
	[]string{"p", "b", "d", "g", "t", "k"},
	[]string{"c", "f", "s", "h", "v", "x", "z", "þ", "ð"},
	[]string{"r"},
	[]string{"l"},
)

// OldNorseIPA ranks the symbols of Old Norse phonetic transcriptions.
// Length marks are not part of it and have to be removed before
// syllabifying a transcription.
var OldNorseIPA = New("non-IPA",
	[]string{"a", "ɛ", "i", "ɔ", "ɒ", "ø", "u", "y", "œ", "e", "o", "ɐ"},
	[]string{"j"},
	[]string{"r"},
	[]string{"l"},
	[]string{"m", "n"},
	[]string{"f", "v", "θ", "ð", "s", "h", "ɣ"},
	[]string{"b", "d", "g", "k", "p", "t"},
)

// WestGermanic is a hierarchy for Middle High German, Old English and
// Middle English.
var WestGermanic = FromStrings("gem",
	"aeiouyæœøáéíóúâêîôûäöüāēīōūȳǣ",
	"jw",
	"r",
	"l",
	"mn",
	"fvszhþðx",
	"pbtdkgqc",
)
