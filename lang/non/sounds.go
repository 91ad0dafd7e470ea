/*
Package non holds the phonological tables for Old Norse.

Sounds, spellings and allophone rules follow the reconstructed
pronunciation of 13th century Old Icelandic as given in Ranke and Hofmann,
Altnordisches Elementarbuch. Normalized orthography is expected, i.e.
spellings like 'ǫ', 'ø', 'œ', 'þ' and 'ð'.

	tr := non.NewTranscriber()
	tr.Transcribe("konungr") // "kɔnunɣr"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package non

import (
	"github.com/npillmayer/skald/phonology/sound"
	"github.com/npillmayer/skald/phonology/transcription"
)

// Short vowels.
var (
	A   = sound.MustVowel(sound.Open, sound.Front, false, sound.Short, "a")
	EE  = sound.MustVowel(sound.OpenMid, sound.Front, false, sound.Short, "ɛ")
	E   = sound.MustVowel(sound.CloseMid, sound.Front, false, sound.Short, "e")
	OEE = sound.MustVowel(sound.CloseMid, sound.Front, true, sound.Short, "ø")
	OE  = sound.MustVowel(sound.OpenMid, sound.Front, true, sound.Short, "œ")
	I   = sound.MustVowel(sound.Close, sound.Front, false, sound.Short, "i")
	Y   = sound.MustVowel(sound.Close, sound.Front, true, sound.Short, "y")
	AO  = sound.MustVowel(sound.Open, sound.Back, true, sound.Short, "ɒ")
	OO  = sound.MustVowel(sound.OpenMid, sound.Back, true, sound.Short, "ɔ")
	O   = sound.MustVowel(sound.CloseMid, sound.Back, true, sound.Short, "o")
	U   = sound.MustVowel(sound.Close, sound.Back, true, sound.Short, "u")
)

// Diphthongs. They are treated as single vowels.
var (
	EY = sound.MustVowel(sound.Open, sound.Front, true, sound.Short, "ɐy")
	AU = sound.MustVowel(sound.Open, sound.Back, true, sound.Short, "ɒu")
	EI = sound.MustVowel(sound.Open, sound.Front, false, sound.Short, "ɛi")
)

// Consonants.
var (
	B  = sound.MustConsonant(sound.Bilabial, sound.Stop, true, false, "b")
	D  = sound.MustConsonant(sound.Alveolar, sound.Stop, true, false, "d")
	F  = sound.MustConsonant(sound.LabioDental, sound.Fricative, false, false, "f")
	G  = sound.MustConsonant(sound.Velar, sound.Stop, true, false, "g")
	GH = sound.MustConsonant(sound.Velar, sound.Fricative, true, false, "ɣ")
	H  = sound.MustConsonant(sound.Glottal, sound.Fricative, false, false, "h")
	J  = sound.MustConsonant(sound.Palatal, sound.Fricative, true, false, "j")
	K  = sound.MustConsonant(sound.Velar, sound.Stop, false, false, "k")
	L  = sound.MustConsonant(sound.Alveolar, sound.Lateral, true, false, "l")
	M  = sound.MustConsonant(sound.Bilabial, sound.Nasal, true, false, "m")
	N  = sound.MustConsonant(sound.Alveolar, sound.Nasal, true, false, "n")
	P  = sound.MustConsonant(sound.Bilabial, sound.Stop, false, false, "p")
	R  = sound.MustConsonant(sound.Alveolar, sound.Trill, true, false, "r")
	S  = sound.MustConsonant(sound.Alveolar, sound.Fricative, false, false, "s")
	T  = sound.MustConsonant(sound.Alveolar, sound.Stop, false, false, "t")
	V  = sound.MustConsonant(sound.LabioDental, sound.Fricative, true, false, "v")
	TH = sound.MustConsonant(sound.Dental, sound.Fricative, false, false, "θ")
	DH = sound.MustConsonant(sound.Dental, sound.Fricative, true, false, "ð")
)

var (
	inventory transcription.Inventory
	alphabet  *transcription.Alphabet
)

func init() {
	alphabet = transcription.NewAlphabet()
	for letter, s := range map[string]sound.Sound{
		"a": A, "e": EE, "i": I, "o": OO, "ǫ": AO, "ø": OEE, "ö": OE, "u": U, "y": Y,
		"á": A.Lengthen(), "æ": EE.Lengthen(), "œ": OE.Lengthen(), "é": E.Lengthen(),
		"í": I.Lengthen(), "ó": O.Lengthen(), "ú": U.Lengthen(), "ý": Y.Lengthen(),
		"ǫ́": AO.Lengthen(),
		"b": B, "d": D, "f": F, "g": G, "h": H, "j": J, "k": K, "l": L, "m": M,
		"n": N, "p": P, "r": R, "s": S, "t": T, "v": V, "þ": TH, "ð": DH,
	} {
		alphabet.AddLetter(letter, s)
	}
	alphabet.AddDiphthong("ey", EY).AddDiphthong("au", AU).AddDiphthong("øy", EY).
		AddDiphthong("ei", EI)
	//
	inventory = make(transcription.Inventory)
	for _, s := range []sound.Sound{A, EE, E, OEE, OE, I, Y, AO, OO, O, U, EY, AU, EI,
		B, D, F, G, GH, H, J, K, L, M, N, P, R, S, T, V, TH, DH} {
		inventory[s.Symbol()] = s
		inventory[s.Lengthen().Symbol()] = s.Lengthen()
	}
}

// Alphabet returns the spellings of Old Norse.
func Alphabet() *transcription.Alphabet {
	return alphabet
}

// Inventory returns the sounds of Old Norse, including long vowels and
// geminate consonants, keyed by phonetic symbol. Clients must not modify it.
func Inventory() transcription.Inventory {
	return inventory
}
