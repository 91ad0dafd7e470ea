package sound

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/skald/core"
	"github.com/npillmayer/skald/core/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skald.phonology")
	defer teardown()
	//
	th, err := NewConsonant(Dental, Fricative, false, false, "θ")
	require.NoError(t, err)
	assert.True(t, th.IsConcrete())
	assert.True(t, th.IsConsonant())
	assert.Equal(t, "θ", th.Symbol())
	assert.Equal(t, "θ<voiceless dental frictative consonant>", th.String())
	//
	_, err = NewConsonant(PlaceUnset, Stop, true, false, "?")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = NewConsonant(Place(99), Stop, true, false, "?")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = NewVowel(Open, Front, false, LengthUnset, "a")
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Panics(t, func() { MustVowel(Open, Backness(17), false, Short, "a") })
	//
	_, err = NewConsonant(Velar, Stop, false, false, "")
	assert.Equal(t, core.EINVALID, core.Code(err), "concrete consonant needs a symbol")
	_, err = NewVowel(Close, Back, true, Long, "")
	assert.Equal(t, core.EINVALID, core.Code(err), "concrete vowel needs a symbol")
	assert.False(t, th.WithSymbol("").IsConcrete())
}

func TestParseFeatures(t *testing.T) {
	m, ok := ParseManner("fricative")
	assert.True(t, ok)
	assert.Equal(t, Fricative, m)
	m, ok = ParseManner("Frictative")
	assert.True(t, ok)
	assert.Equal(t, Fricative, m)
	p, ok := ParsePlace("labiodental")
	assert.True(t, ok)
	assert.Equal(t, LabioDental, p)
	h, ok := ParseHeight("close-mid")
	assert.True(t, ok)
	assert.Equal(t, CloseMid, h)
	_, ok = ParseBackness("sideways")
	assert.False(t, ok)
	_, ok = ParseLength("")
	assert.False(t, ok)
}

func TestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skald.phonology")
	defer teardown()
	//
	k := MustConsonant(Velar, Stop, false, false, "k")
	a := MustVowel(Open, Front, false, Short, "a")
	voiceless, err := ConsonantPattern(ConsonantFeatures{Voiced: option.Some(false)})
	require.NoError(t, err)
	voiced, _ := ConsonantPattern(ConsonantFeatures{Voiced: option.Some(true)})
	velar, _ := ConsonantPattern(ConsonantFeatures{Place: Velar})
	front, _ := VowelPattern(VowelFeatures{Backness: Front})
	assert.False(t, voiceless.IsConcrete())
	//
	assert.True(t, k.Match(nil), "nil pattern must match everything")
	assert.True(t, a.Match(nil), "nil pattern must match everything")
	assert.True(t, k.Match(&voiceless))
	assert.False(t, k.Match(&voiced))
	assert.True(t, k.Match(&velar))
	assert.False(t, a.Match(&voiceless), "vowel must not match consonant pattern")
	assert.True(t, a.Match(&front))
	anyVowel := AnyVowel()
	assert.True(t, a.Match(&anyVowel))
	kk := k.Lengthen()
	geminate, _ := ConsonantPattern(ConsonantFeatures{Geminate: option.Some(true)})
	assert.True(t, kk.Match(&geminate))
	assert.False(t, k.Match(&geminate))
}

func TestLengthen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skald.phonology")
	defer teardown()
	//
	sounds := []Sound{
		MustConsonant(Alveolar, Stop, false, false, "t"),
		MustConsonant(Alveolar, Nasal, true, false, "n"),
		MustVowel(Open, Front, false, Short, "a"),
		MustVowel(Close, Back, true, Long, "uː"),
	}
	for _, s := range sounds {
		once := s.Lengthen()
		twice := once.Lengthen()
		assert.Equal(t, once, twice, "lengthening %s must be idempotent", s)
	}
	t1 := sounds[0].Lengthen()
	assert.Equal(t, "tː", t1.Symbol())
	assert.True(t, t1.Geminate())
	assert.False(t, sounds[0].Geminate(), "lengthen must not alter its receiver")
	a1 := sounds[2].Lengthen()
	assert.Equal(t, Long, a1.Length())
	assert.Equal(t, "aː", a1.Symbol())
	assert.Equal(t, "uː", sounds[3].Lengthen().Symbol())
}
