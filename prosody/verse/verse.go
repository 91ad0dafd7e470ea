package verse

import (
	"github.com/npillmayer/skald/core/parameters"
	"github.com/npillmayer/skald/lang/non"
	"github.com/npillmayer/skald/orthography"
	"github.com/npillmayer/skald/phonology/syllable"
	"github.com/npillmayer/skald/phonology/transcription"
	"github.com/npillmayer/skald/prosody/alliteration"
)

// Verse is a stanza of a poem together with its analysis.
//
// Derived fields are empty until Syllabify or ToPhonetics is called, and are
// recomputed on every call. Syllabified mirrors the shape of LongLines, with
// every short line holding a list of syllabified words. Transcribed holds
// one phonetic phrase per short line.
type Verse struct {
	Meter       Meter
	Text        string
	ShortLines  []string
	LongLines   [][]string
	Syllabified [][][][]string
	Transcribed [][]string
	regs        *parameters.AnalysisRegisters
	tokenizer   orthography.Tokenizer
	transcriber *transcription.Transcriber
}

// New creates an empty verse for a meter. If regs is nil, default
// parameters are used.
func New(meter Meter, regs *parameters.AnalysisRegisters) *Verse {
	if meter == nil {
		meter = Unclassified
	}
	if regs == nil {
		regs = parameters.NewAnalysisRegisters()
	}
	return &Verse{
		Meter:       meter,
		regs:        regs,
		tokenizer:   orthography.WordTokenizer{},
		transcriber: non.NewTranscriber(),
	}
}

// Load classifies a stanza and creates a verse from it.
func Load(text string, regs *parameters.AnalysisRegisters) (*Verse, error) {
	v := New(Classify(text), regs)
	if err := v.FromShortLinesText(text); err != nil {
		return nil, err
	}
	tracer().Infof("loaded stanza of %d lines as %s", len(v.ShortLines), v.Meter.Name())
	return v, nil
}

// SetTranscriber replaces the Old Norse default transcriber.
func (v *Verse) SetTranscriber(tr *transcription.Transcriber) {
	v.transcriber = tr
}

// FromShortLinesText splits text into short lines and groups them to long
// lines according to the meter of v. Derived fields are reset.
func (v *Verse) FromShortLinesText(text string) error {
	shortLines := ShortLines(text)
	longLines, err := v.Meter.LongLines(shortLines)
	if err != nil {
		return err
	}
	v.Text = text
	v.ShortLines = shortLines
	v.LongLines = longLines
	v.Syllabified, v.Transcribed = nil, nil
	return nil
}

// Words tokenizes a short line and strips punctuation from its words.
func (v *Verse) Words(line string) []string {
	punct := orthography.NewPunctuation(v.regs.S(parameters.P_PUNCTUATION))
	tokens := v.tokenizer.Tokenize(line)
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}
	return punct.StripAll(words)
}

// LongLineWords returns the words of every long line.
func (v *Verse) LongLineWords() [][]string {
	result := make([][]string, len(v.LongLines))
	for i, long := range v.LongLines {
		for _, short := range long {
			result[i] = append(result[i], v.Words(short)...)
		}
	}
	return result
}

func (v *Verse) syllabifier() (*syllable.Syllabifier, error) {
	syl, err := syllable.ForLanguageName(v.regs.S(parameters.P_LANGUAGE))
	if err != nil {
		return nil, err
	}
	return syl.WithBreakGeminants(v.regs.B(parameters.P_BREAKGEMINANTS)), nil
}

// Syllabify syllabifies every word of the verse. A verse without text
// is left empty. Words which cannot be syllabified abort with an error.
func (v *Verse) Syllabify() error {
	v.Syllabified = nil
	if len(v.LongLines) == 0 {
		tracer().Errorf("no text was imported")
		return nil
	}
	syl, err := v.syllabifier()
	if err != nil {
		return err
	}
	result := make([][][][]string, len(v.LongLines))
	for i, long := range v.LongLines {
		result[i] = make([][][]string, len(long))
		for j, short := range long {
			for _, w := range v.Words(short) {
				syllables, err := syl.Syllabify(orthography.Lower(w))
				if err != nil {
					return err
				}
				result[i][j] = append(result[i][j], syllables)
			}
		}
	}
	v.Syllabified = result
	return nil
}

// ToPhonetics transcribes every short line as a phrase. A verse without
// text is left empty. Words which cannot be transcribed abort with an
// error.
func (v *Verse) ToPhonetics() error {
	v.Transcribed = nil
	if len(v.LongLines) == 0 {
		tracer().Errorf("no text was imported")
		return nil
	}
	brackets := v.regs.B(parameters.P_BRACKETS)
	result := make([][]string, len(v.LongLines))
	for i, long := range v.LongLines {
		result[i] = make([]string, len(long))
		for j, short := range long {
			phrase, err := v.transcriber.TranscribePhrase(v.Words(short), brackets)
			if err != nil {
				return err
			}
			result[i][j] = phrase
		}
	}
	v.Transcribed = result
	return nil
}

// Alliteration finds the alliterating words of every long line. Words
// with fewer syllables than parameter P_MINSYLLABLES do not take part.
func (v *Verse) Alliteration() ([][]alliteration.Pair, error) {
	analyzer := alliteration.New(v.transcriber)
	lines := v.LongLineWords()
	all, err := analyzer.Verses(lines)
	if err != nil {
		return nil, err
	}
	minSyllables := v.regs.N(parameters.P_MINSYLLABLES)
	if minSyllables <= 1 {
		return all, nil
	}
	syl, err := v.syllabifier()
	if err != nil {
		return nil, err
	}
	stressable := func(w string) bool {
		s, err := syl.Syllabify(orthography.Lower(w))
		return err == nil && len(s) >= minSyllables
	}
	for k, pairs := range all {
		kept := pairs[:0]
		for _, p := range pairs {
			if stressable(p.First) && stressable(p.Second) {
				kept = append(kept, p)
			}
		}
		all[k] = kept
	}
	return all, nil
}
