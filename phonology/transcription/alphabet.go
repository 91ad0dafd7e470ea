package transcription

import (
	"sort"

	"github.com/derekparker/trie"
	"github.com/npillmayer/skald/orthography"
	"github.com/npillmayer/skald/phonology/sound"
)

// Alphabet maps orthographic letters and diphthong spellings to sounds.
// Keys are NFC normalized. An Alphabet must not be modified after it has
// been handed to a Transcriber.
type Alphabet struct {
	spellings *trie.Trie
}

type spelling struct {
	sound     sound.Sound
	diphthong bool
}

// NewAlphabet creates an empty alphabet.
func NewAlphabet() *Alphabet {
	return &Alphabet{spellings: trie.New()}
}

// AddLetter maps a single letter to a sound.
func (a *Alphabet) AddLetter(letter string, s sound.Sound) *Alphabet {
	a.spellings.Add(orthography.Normalize(letter), spelling{sound: s})
	return a
}

// AddDiphthong maps a spelling of two letters to a single vowel.
func (a *Alphabet) AddDiphthong(letters string, s sound.Sound) *Alphabet {
	a.spellings.Add(orthography.Normalize(letters), spelling{sound: s, diphthong: true})
	return a
}

// Letter returns the sound of a letter.
func (a *Alphabet) Letter(letter string) (sound.Sound, bool) {
	return a.find(letter, false)
}

// Diphthong returns the sound of a diphthong spelled with letters first
// and second.
func (a *Alphabet) Diphthong(first, second string) (sound.Sound, bool) {
	if !a.spellings.HasKeysWithPrefix(first) {
		return sound.Sound{}, false
	}
	return a.find(first+second, true)
}

func (a *Alphabet) find(key string, diphthong bool) (sound.Sound, bool) {
	node, ok := a.spellings.Find(key)
	if !ok {
		return sound.Sound{}, false
	}
	sp, ok := node.Meta().(spelling)
	if !ok || sp.diphthong != diphthong {
		return sound.Sound{}, false
	}
	return sp.sound, true
}

// Spellings lists all letters and diphthong spellings of a, sorted.
func (a *Alphabet) Spellings() []string {
	keys := a.spellings.Keys()
	sort.Strings(keys)
	return keys
}
