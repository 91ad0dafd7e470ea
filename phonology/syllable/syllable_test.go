package syllable

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/skald/core"
	"github.com/npillmayer/skald/orthography"
	"github.com/npillmayer/skald/phonology/sonority"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func oldNorse() *Syllabifier {
	return New(sonority.OldNorse, BreakGeminants(true), InvalidOnsets(OldNorseInvalidOnsets...),
		Diphthongs(OldNorseDiphthongs...))
}

func TestHelgar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skald.phonology")
	defer teardown()
	//
	syllables, err := oldNorse().Syllabify("helgar")
	require.NoError(t, err)
	assert.Equal(t, []string{"hel", "gar"}, syllables)
}

// Syllabified words of Vǫluspá 1, Hávamál 77 and Rígsþula.
var oldNorseWords = []string{
	"hljóðs", "bið", "ek", "al.lar", "hel.gar", "kin.dir", "meir.i", "ok",
	"min.ni", "mög.u", "heim.dal.lar", "vil.tu", "at", "val.föðr", "vel",
	"fyr", "tel.ja", "forn", "spjöll", "fir.a", "þau", "er", "fremst", "of",
	"man", "deyr", "fé", "deyj.a", "frændr", "sjalfr", "it", "sam.a",
	"veit", "einn", "al.drei", "dómr", "um", "dau.ðan", "hvern", "en.ni.tungl",
	"bú.a", "trú.a", "sá.it", "fí.and.i", "há.va.mál",
}

func TestOldNorseWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skald.phonology")
	defer teardown()
	//
	syl := oldNorse()
	for _, expected := range oldNorseWords {
		word := strings.ReplaceAll(expected, ".", "")
		syllables, err := syl.Syllabify(word)
		require.NoError(t, err, word)
		assert.Equal(t, strings.Split(expected, "."), syllables, word)
		assert.Equal(t, word, strings.Join(syllables, ""), "syllables must reconstruct %q", word)
	}
}

func TestOneNucleusPerSyllable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skald.phonology")
	defer teardown()
	//
	syl := oldNorse()
	diphthong := func(a, b string) bool {
		for _, d := range OldNorseDiphthongs {
			if d == a+b {
				return true
			}
		}
		return false
	}
	words := []string{"búa", "trúa", "sáit", "fíandi", "fiat", "heimdallar", "deyja", "meiri",
		"aldrei", "dauðan", "hǫ́r", "óa"}
	for _, word := range words {
		syllables, err := syl.Syllabify(word)
		require.NoError(t, err, word)
		assert.Equal(t, word, strings.Join(syllables, ""))
		for _, s := range syllables {
			nuclei := 0
			letters := orthography.Letters(s)
			for i, l := range letters {
				if !syl.Hierarchy().IsNucleus(l) {
					continue
				}
				if i > 0 && diphthong(letters[i-1], l) {
					continue
				}
				nuclei++
			}
			assert.Equal(t, 1, nuclei, "%s -> %v: syllable %q", word, syllables, s)
		}
	}
}

func TestNoNucleus(t *testing.T) {
	syllables, err := oldNorse().Syllabify("hm")
	require.NoError(t, err)
	assert.Equal(t, []string{"hm"}, syllables)
	syllables, err = oldNorse().Syllabify("á")
	require.NoError(t, err)
	assert.Equal(t, []string{"á"}, syllables)
}

func TestInputErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skald.phonology")
	defer teardown()
	//
	_, err := oldNorse().Syllabify("")
	assert.Equal(t, core.EINPUT, core.Code(err))
	_, err = oldNorse().Syllabify("wyrd")
	assert.Equal(t, core.EINPUT, core.Code(err))
}

func TestPresets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skald.phonology")
	defer teardown()
	//
	cases := []struct {
		lang, word string
		expected   []string
	}{
		{"gmh", "lobebæren", []string{"lo", "be", "bæ", "ren"}},
		{"gmh", "gesungen", []string{"ge", "sun", "gen"}},
		{"enm", "huntyng", []string{"hun", "tyng"}},
		{"ang", "arcebiscop", []string{"ar", "ce", "bis", "cop"}},
		{"ang", "cyning", []string{"cy", "ning"}},
		{"non", "ennitungl", []string{"en", "ni", "tungl"}},
	}
	for _, c := range cases {
		syl, err := ForLanguageName(c.lang)
		require.NoError(t, err, c.lang)
		syllables, err := syl.Syllabify(c.word)
		require.NoError(t, err, c.word)
		assert.Equal(t, c.expected, syllables, c.word)
	}
	_, err := ForLanguage(language.German)
	assert.Equal(t, core.EINPUT, core.Code(err))
}

func TestTranscriptionHierarchy(t *testing.T) {
	syl := New(sonority.OldNorseIPA, BreakGeminants(true), Diphthongs(OldNorseIPADiphthongs...))
	syllables, err := syl.Syllabify("hɛlɣar")
	require.NoError(t, err)
	assert.Equal(t, []string{"hɛl", "ɣar"}, syllables)
	syllables, err = syl.Syllabify("dɒuðan")
	require.NoError(t, err)
	assert.Equal(t, []string{"dɒu", "ðan"}, syllables)
	_, err = syl.Syllabify("buːa")
	assert.Equal(t, core.EINPUT, core.Code(err), "length marks are not ranked")
	syllables, err = syl.Syllabify("bua")
	require.NoError(t, err)
	assert.Equal(t, []string{"bu", "a"}, syllables)
}

func TestGeminateSwitch(t *testing.T) {
	syl := oldNorse().WithBreakGeminants(false)
	syllables, err := syl.Syllabify("allar")
	require.NoError(t, err)
	assert.Equal(t, "allar", strings.Join(syllables, ""))
	syllables, _ = oldNorse().Syllabify("allar")
	assert.Equal(t, []string{"al", "lar"}, syllables)
}
