/*
Package syllable splits words into syllables.

Syllable boundaries are found by the sonority sequencing principle: every
syllable is built around a peak of sonority (its nucleus), with sonority
falling towards the syllable's edges. Letters are ranked by a
sonority.Hierarchy. A per-language list of invalid onsets prevents
boundaries which would start a syllable with an impossible consonant
cluster. Two adjacent vowels belong to different syllables, unless they
spell a diphthong of the language.

	syl := syllable.New(sonority.OldNorse, syllable.InvalidOnsets("lm", "fj"))
	syl.Syllabify("helgar") // [hel gar]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syllable

import (
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/skald/core"
	"github.com/npillmayer/skald/orthography"
	"github.com/npillmayer/skald/phonology/sonority"
	"golang.org/x/text/language"
)

// tracer traces with key 'skald.phonology'.
func tracer() tracing.Trace {
	return tracing.Select("skald.phonology")
}

// Syllabifier splits words into syllables. It holds no mutable state and
// may be used concurrently.
type Syllabifier struct {
	hierarchy      *sonority.Hierarchy
	invalidOnsets  *hashset.Set
	diphthongs     *hashset.Set
	breakGeminants bool
}

// Option configures a Syllabifier.
type Option func(*Syllabifier)

// BreakGeminants forces a boundary between two identical letters.
func BreakGeminants(b bool) Option {
	return func(s *Syllabifier) {
		s.breakGeminants = b
	}
}

// InvalidOnsets sets the clusters which must never start a syllable.
func InvalidOnsets(onsets ...string) Option {
	return func(s *Syllabifier) {
		for _, o := range onsets {
			s.invalidOnsets.Add(orthography.Normalize(o))
		}
	}
}

// Diphthongs sets the vowel pairs which form a single nucleus.
func Diphthongs(spellings ...string) Option {
	return func(s *Syllabifier) {
		for _, d := range spellings {
			s.diphthongs.Add(orthography.Normalize(d))
		}
	}
}

// New creates a syllabifier for a sonority hierarchy.
func New(h *sonority.Hierarchy, opts ...Option) *Syllabifier {
	s := &Syllabifier{
		hierarchy:     h,
		invalidOnsets: hashset.New(),
		diphthongs:    hashset.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OldNorseInvalidOnsets are consonant clusters which do not start a
// syllable in Old Norse.
var OldNorseInvalidOnsets = []string{"lm", "fj", "nm", "rk", "nn", "tt", "ðr"}

// Diphthong spellings per language.
var (
	OldNorseDiphthongs         = []string{"ey", "au", "ei", "øy"}
	OldNorseIPADiphthongs      = []string{"ɐy", "ɒu", "ɛi"}
	MiddleHighGermanDiphthongs = []string{"ie", "uo", "üe", "ei", "ou", "öu", "iu"}
	OldEnglishDiphthongs       = []string{"ea", "eo", "ie", "io"}
	MiddleEnglishDiphthongs    = []string{"ai", "ay", "ei", "ey", "au", "ou", "oi", "oy", "ie"}
)

// ForLanguage returns the preset syllabifier for a language. Supported are
// Old Norse (non), Middle High German (gmh), Old English (ang) and Middle
// English (enm).
func ForLanguage(tag language.Tag) (*Syllabifier, error) {
	base, _ := tag.Base()
	switch base.String() {
	case "non":
		return New(sonority.OldNorse, BreakGeminants(true), InvalidOnsets(OldNorseInvalidOnsets...),
			Diphthongs(OldNorseDiphthongs...)), nil
	case "gmh":
		return New(sonority.WestGermanic, Diphthongs(MiddleHighGermanDiphthongs...)), nil
	case "ang":
		return New(sonority.WestGermanic, Diphthongs(OldEnglishDiphthongs...)), nil
	case "enm":
		return New(sonority.WestGermanic, Diphthongs(MiddleEnglishDiphthongs...)), nil
	}
	return nil, core.Error(core.EINPUT, "no syllabifier for language %q", tag)
}

// ForLanguageName is ForLanguage for a BCP 47 language name.
func ForLanguageName(name string) (*Syllabifier, error) {
	tag, err := language.Parse(name)
	if err != nil {
		return nil, core.WrapError(err, core.EINPUT, "unknown language %q", name)
	}
	return ForLanguage(tag)
}

// WithBreakGeminants returns a copy of s with geminate breaking switched
// on or off.
func (s *Syllabifier) WithBreakGeminants(b bool) *Syllabifier {
	c := *s
	c.breakGeminants = b
	return &c
}

// Hierarchy returns the sonority hierarchy of s.
func (s *Syllabifier) Hierarchy() *sonority.Hierarchy {
	return s.hierarchy
}

// Syllabify splits a lower-case word into syllables. The concatenation of
// the syllables is the (NFC normalized) word. A word without a nucleus is
// returned as a single syllable.
//
// Syllabify returns an error with code core.EINPUT for an empty word or for
// a word containing letters unknown to the sonority hierarchy.
func (s *Syllabifier) Syllabify(word string) ([]string, error) {
	letters := orthography.Letters(word)
	if len(letters) == 0 {
		return nil, core.Error(core.EINPUT, "cannot syllabify an empty word")
	}
	ranks := make([]int, len(letters))
	for i, l := range letters {
		r, ok := s.hierarchy.Rank(l)
		if !ok {
			return nil, core.Error(core.EINPUT, "letter %q of %q is not ranked by sonority hierarchy %s",
				l, word, s.hierarchy.Name())
		}
		ranks[i] = r
	}
	cuts := s.boundaries(letters, ranks)
	tracer().Debugf("syllabify %q: boundaries after %v", word, cuts)
	syllables := s.mergeCoda(split(letters, cuts))
	s.maximizeOnsets(syllables)
	s.legalizeOnsets(syllables)
	syllables = s.mergeCoda(dropEmpty(syllables))
	result := make([]string, len(syllables))
	for i, syl := range syllables {
		result[i] = strings.Join(syl, "")
	}
	return result, nil
}

// boundaries scans for sonority peaks and troughs. It returns the indices
// of letters which end a syllable. A vowel following another vowel in
// hiatus starts a new syllable.
func (s *Syllabifier) boundaries(letters []string, ranks []int) []int {
	n := len(letters)
	var cuts []int
	findNucleus := true
	i := 0
	for i < n-1 {
		if findNucleus {
			for ranks[i] != 0 && i < n-1 {
				i++
			}
			i++
		}
		if i < n && s.hiatus(letters[i-1], letters[i], ranks[i-1], ranks[i]) {
			cuts = append(cuts, i-1)
			findNucleus = false
			i++
			continue
		}
		if i >= n-1 {
			break
		}
		switch {
		case s.breakGeminants && letters[i-1] == letters[i]:
			cuts = append(cuts, i-1)
			findNucleus = true
		case ranks[i-1] == ranks[i] && ranks[i] == ranks[i+1]:
			cuts = append(cuts, i)
			findNucleus = true
		case ranks[i] > ranks[i-1] && ranks[i] > ranks[i+1]:
			cuts = append(cuts, i)
			findNucleus = true
		case ranks[i] < ranks[i-1] && ranks[i] < ranks[i+1]:
			cuts = append(cuts, i)
			findNucleus = true
		default:
			findNucleus = false
		}
		i++
	}
	return cuts
}

// hiatus is true for two different vowels which do not spell a diphthong.
// Identical vowels are a long vowel.
func (s *Syllabifier) hiatus(a, b string, ra, rb int) bool {
	return ra == 0 && rb == 0 && a != b && !s.diphthongs.Contains(a+b)
}

func split(letters []string, cuts []int) [][]string {
	var syllables [][]string
	prev := 0
	for _, c := range cuts {
		if c+1 > prev {
			syllables = append(syllables, letters[prev:c+1])
			prev = c + 1
		}
	}
	if prev < len(letters) {
		syllables = append(syllables, letters[prev:])
	}
	return syllables
}

func dropEmpty(syllables [][]string) [][]string {
	r := syllables[:0]
	for _, syl := range syllables {
		if len(syl) > 0 {
			r = append(r, syl)
		}
	}
	return r
}

func (s *Syllabifier) hasNucleus(syl []string) bool {
	for _, l := range syl {
		if s.hierarchy.IsNucleus(l) {
			return true
		}
	}
	return false
}

// mergeCoda appends a final syllable without nucleus to its predecessor.
func (s *Syllabifier) mergeCoda(syllables [][]string) [][]string {
	n := len(syllables)
	if n > 1 && !s.hasNucleus(syllables[n-1]) {
		last := append(clone(syllables[n-2]), syllables[n-1]...)
		syllables = append(syllables[:n-2], last)
	}
	return syllables
}

// maximizeOnsets moves a consonant to a following syllable which starts
// with a vowel and ends with a consonant.
func (s *Syllabifier) maximizeOnsets(syllables [][]string) {
	for i := 0; i < len(syllables)-1; i++ {
		cur, next := syllables[i], syllables[i+1]
		if len(cur) == 0 || len(next) == 0 {
			continue
		}
		if s.hierarchy.IsNucleus(next[0]) && !s.hierarchy.IsNucleus(next[len(next)-1]) &&
			!s.hierarchy.IsNucleus(cur[len(cur)-1]) {
			syllables[i+1] = append([]string{cur[len(cur)-1]}, next...)
			syllables[i] = cur[:len(cur)-1]
		}
	}
}

// legalizeOnsets shortens invalid onsets, moving their leading consonants
// to the preceding syllable.
func (s *Syllabifier) legalizeOnsets(syllables [][]string) {
	for i := 1; i < len(syllables); i++ {
		syl := syllables[i]
		k := 0
		for k < len(syl) && !s.hierarchy.IsNucleus(syl[k]) {
			k++
		}
		onset := syl[:k]
		for j := 0; j < len(onset); j++ {
			if !s.invalidOnsets.Contains(strings.Join(onset[j:], "")) {
				if j > 0 {
					syllables[i-1] = append(clone(syllables[i-1]), onset[:j]...)
					syllables[i] = syl[j:]
				}
				break
			}
		}
	}
}

func clone(letters []string) []string {
	c := make([]string, len(letters))
	copy(c, letters)
	return c
}
