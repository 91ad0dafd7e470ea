package annotate

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/skald/prosody/alliteration"
)

// Word is a word of a document together with its annotations.
type Word struct {
	String    string   // word as found in the text, possibly stripped of punctuation
	Index     int      // position within Doc.Words
	Start     int      // byte offset of the token in Doc.Raw
	End       int      // byte offset after the token
	Phonetic  string   // phonetic transcription, empty if not transcribed
	Syllables []string // syllables, nil if not syllabified
}

// Doc is an annotated text.
type Doc struct {
	Raw     string
	Words   []Word
	Verses  [][]int // indices into Words, one list per verse
	Prosody [][]alliteration.Pair
}

// Clone returns a deep copy of doc.
func (doc *Doc) Clone() *Doc {
	c := &Doc{Raw: doc.Raw}
	if doc.Words != nil {
		c.Words = make([]Word, len(doc.Words))
		for i, w := range doc.Words {
			c.Words[i] = w
			if w.Syllables != nil {
				c.Words[i].Syllables = append([]string(nil), w.Syllables...)
			}
		}
	}
	if doc.Verses != nil {
		c.Verses = make([][]int, len(doc.Verses))
		for i, v := range doc.Verses {
			c.Verses[i] = append([]int(nil), v...)
		}
	}
	if doc.Prosody != nil {
		c.Prosody = make([][]alliteration.Pair, len(doc.Prosody))
		for i, p := range doc.Prosody {
			c.Prosody[i] = append([]alliteration.Pair(nil), p...)
		}
	}
	return c
}

// Strings returns the strings of all words.
func (doc *Doc) Strings() []string {
	s := make([]string, len(doc.Words))
	for i, w := range doc.Words {
		s[i] = w.String
	}
	return s
}

// VerseWords returns the strings of the words of verse v.
func (doc *Doc) VerseWords(v int) []string {
	s := make([]string, len(doc.Verses[v]))
	for i, w := range doc.Verses[v] {
		s[i] = doc.Words[w].String
	}
	return s
}

// PhoneticText returns the transcription of all words as a cord, with
// one leaf per word and single spaces between words. Words without
// transcription contribute their string.
func (doc *Doc) PhoneticText() cords.Cord {
	b := cords.NewBuilder()
	for i, w := range doc.Words {
		if i > 0 {
			b.Append(&Leaf{word: -1, content: " "})
		}
		content := w.Phonetic
		if content == "" {
			content = w.String
		}
		leaf := &Leaf{word: i, content: content}
		tracer().Debugf("phonetic leaf %s", leaf.dbgString())
		b.Append(leaf)
	}
	return b.Cord()
}

// ---------------------------------------------------------------------------

// Leaf is the leaf type of cords created by Doc.PhoneticText.
type Leaf struct {
	word    int // index of the word, -1 for spaces
	content string
}

// Word is the index of the word this leaf transcribes, or -1 for a space.
func (l Leaf) Word() int {
	return l.word
}

// Weight of a leaf is its string length in bytes.
func (l Leaf) Weight() uint64 {
	return uint64(len(l.content))
}

func (l Leaf) String() string {
	return l.content
}

// Split splits a leaf at byte position i, resulting in 2 new leafs.
func (l Leaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	left := &Leaf{word: l.word, content: l.content[:i]}
	right := &Leaf{word: l.word, content: l.content[i:]}
	return left, right
}

// Substring returns a string segment of the leaf's text fragment.
func (l Leaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = Leaf{}

func (l Leaf) dbgString() string {
	cont := strings.Replace(l.String(), " ", "_", -1)
	return fmt.Sprintf("{#%d \"%s\"}", l.word, cont)
}
