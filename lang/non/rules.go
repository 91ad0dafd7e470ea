package non

import (
	"github.com/npillmayer/skald/core/option"
	"github.com/npillmayer/skald/phonology/sonority"
	"github.com/npillmayer/skald/phonology/sound"
	"github.com/npillmayer/skald/phonology/syllable"
	"github.com/npillmayer/skald/phonology/transcription"
)

func consonant(voiced bool) *sound.Sound {
	s, _ := sound.ConsonantPattern(sound.ConsonantFeatures{Voiced: option.Some(voiced)})
	return &s
}

func anyVowel() *sound.Sound {
	s := sound.AnyVowel()
	return &s
}

func ref(s sound.Sound) *sound.Sound {
	return &s
}

// Rules are the allophone rules of Old Norse. f and þ are voiced inside
// words unless adjacent to a voiceless (f) or voiced (þ) consonant, g is
// spirantized except at the beginning of a word and after n.
var Rules = []transcription.Rule{
	transcription.NewRule(transcription.First, nil, nil, F, F),
	transcription.NewRule(transcription.Inner, nil, consonant(false), F, F),
	transcription.NewRule(transcription.Inner, consonant(false), nil, F, F),
	transcription.NewRule(transcription.Inner, nil, nil, F, V),
	transcription.NewRule(transcription.Last, nil, nil, F, V),
	//
	transcription.NewRule(transcription.First, nil, nil, G, G),
	transcription.NewRule(transcription.Inner, ref(N), anyVowel(), G, G),
	transcription.NewRule(transcription.Inner, nil, consonant(false), G, K),
	transcription.NewRule(transcription.Inner, nil, nil, G, GH),
	transcription.NewRule(transcription.Last, nil, nil, G, GH),
	//
	transcription.NewRule(transcription.First, nil, nil, TH, TH),
	transcription.NewRule(transcription.Inner, nil, consonant(true), TH, TH),
	transcription.NewRule(transcription.Inner, consonant(true), nil, TH, TH),
	transcription.NewRule(transcription.Inner, nil, nil, TH, DH),
	transcription.NewRule(transcription.Last, nil, nil, TH, DH),
}

// NewTranscriber returns a transcriber for Old Norse.
func NewTranscriber() *transcription.Transcriber {
	return transcription.New(alphabet, Rules)
}

// NewSyllabifier returns a syllabifier for Old Norse, breaking geminates
// and respecting the Old Norse invalid onsets and diphthongs.
func NewSyllabifier() *syllable.Syllabifier {
	return syllable.New(sonority.OldNorse, syllable.BreakGeminants(true),
		syllable.InvalidOnsets(syllable.OldNorseInvalidOnsets...),
		syllable.Diphthongs(syllable.OldNorseDiphthongs...))
}
