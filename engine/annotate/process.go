package annotate

import (
	"strings"

	"github.com/npillmayer/skald/orthography"
	"github.com/npillmayer/skald/phonology/syllable"
	"github.com/npillmayer/skald/phonology/transcription"
	"github.com/npillmayer/skald/prosody/alliteration"
)

// Process is a step of an analysis pipeline. Run returns a new document
// and must not modify its argument.
type Process interface {
	Name() string
	Run(doc *Doc) (*Doc, error)
}

// Tokenization splits the raw text of a document into words. The raw text
// is normalized to NFC, word offsets refer to the normalized text.
type Tokenization struct {
	Tokenizer orthography.Tokenizer // defaults to orthography.WordTokenizer
}

func (Tokenization) Name() string { return "tokenization" }

func (p Tokenization) Run(doc *Doc) (*Doc, error) {
	out := doc.Clone()
	out.Raw = orthography.Normalize(doc.Raw)
	tokenizer := p.Tokenizer
	if tokenizer == nil {
		tokenizer = orthography.WordTokenizer{}
	}
	tokens := tokenizer.Tokenize(out.Raw)
	out.Words = make([]Word, len(tokens))
	for i, t := range tokens {
		out.Words[i] = Word{String: t.Text, Index: i, Start: t.Start, End: t.End}
	}
	out.Verses, out.Prosody = nil, nil
	tracer().Debugf("tokenized %d words", len(out.Words))
	return out, nil
}

// PunctuationRemoval strips punctuation marks from words and drops words
// consisting of punctuation only. Offsets keep the span of the original
// token.
type PunctuationRemoval struct {
	Marks string
}

func (PunctuationRemoval) Name() string { return "punctuation removal" }

func (p PunctuationRemoval) Run(doc *Doc) (*Doc, error) {
	out := doc.Clone()
	punct := orthography.NewPunctuation(p.Marks)
	words := out.Words[:0]
	for _, w := range out.Words {
		if w.String = punct.Strip(w.String); w.String != "" {
			w.Index = len(words)
			words = append(words, w)
		}
	}
	out.Words = words
	out.Verses, out.Prosody = nil, nil
	return out, nil
}

// Transcription adds phonetic transcriptions to words.
type Transcription struct {
	Transcriber *transcription.Transcriber
}

func (Transcription) Name() string { return "transcription" }

func (p Transcription) Run(doc *Doc) (*Doc, error) {
	out := doc.Clone()
	for i := range out.Words {
		phonetic, err := p.Transcriber.Transcribe(out.Words[i].String)
		if err != nil {
			return nil, err
		}
		out.Words[i].Phonetic = phonetic
	}
	return out, nil
}

// Syllabification adds syllables to words. Words are lower-cased first.
type Syllabification struct {
	Syllabifier *syllable.Syllabifier
}

func (Syllabification) Name() string { return "syllabification" }

func (p Syllabification) Run(doc *Doc) (*Doc, error) {
	out := doc.Clone()
	for i := range out.Words {
		syllables, err := p.Syllabifier.Syllabify(orthography.Lower(out.Words[i].String))
		if err != nil {
			return nil, err
		}
		out.Words[i].Syllables = syllables
	}
	return out, nil
}

// Prosody groups words into verses, one verse per line of the raw text,
// and finds alliterating words within every verse. Blank lines do not
// produce verses.
type Prosody struct {
	Analyzer *alliteration.Analyzer
}

func (Prosody) Name() string { return "prosody" }

func (p Prosody) Run(doc *Doc) (*Doc, error) {
	out := doc.Clone()
	out.Verses = Verses(out)
	out.Prosody = make([][]alliteration.Pair, len(out.Verses))
	for v := range out.Verses {
		pairs, err := p.Analyzer.Pairs(out.VerseWords(v))
		if err != nil {
			return nil, err
		}
		out.Prosody[v] = pairs
	}
	return out, nil
}

// Verses assigns the words of a document to the lines of its raw text.
// Words after the last line break form a last verse.
func Verses(doc *Doc) [][]int {
	var verses [][]int
	var current []int
	line, pos := 0, 0
	for _, w := range doc.Words {
		if w.Start > pos {
			breaks := strings.Count(doc.Raw[pos:w.Start], "\n")
			if breaks > 0 && len(current) > 0 {
				verses = append(verses, current)
				current = nil
			}
			line += breaks
			pos = w.Start
		}
		current = append(current, w.Index)
	}
	if len(current) > 0 {
		verses = append(verses, current)
	}
	tracer().Debugf("%d words in %d verses on %d lines", len(doc.Words), len(verses), line+1)
	return verses
}
