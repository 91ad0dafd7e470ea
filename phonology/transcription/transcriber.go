package transcription

import (
	"strings"

	"github.com/npillmayer/skald/core"
	"github.com/npillmayer/skald/orthography"
	"github.com/npillmayer/skald/phonology/sound"
)

// Transcriber converts words to phonetic strings. Transcribers hold no
// mutable state and may be used concurrently.
type Transcriber struct {
	alphabet  *Alphabet
	rules     []Rule
	byTrigger map[string][]Rule
}

// New creates a transcriber for an alphabet and an ordered list of
// allophone rules.
func New(alphabet *Alphabet, rules []Rule) *Transcriber {
	t := &Transcriber{
		alphabet:  alphabet,
		rules:     rules,
		byTrigger: make(map[string][]Rule),
	}
	for _, r := range rules {
		sym := r.Trigger.Symbol()
		t.byTrigger[sym] = append(t.byTrigger[sym], r)
	}
	return t
}

// WithRules returns a transcriber for the same alphabet, where rules take
// precedence over the rules of t.
func (t *Transcriber) WithRules(rules ...Rule) *Transcriber {
	all := make([]Rule, 0, len(rules)+len(t.rules))
	all = append(all, rules...)
	all = append(all, t.rules...)
	return New(t.alphabet, all)
}

// Alphabet returns the alphabet of t.
func (t *Transcriber) Alphabet() *Alphabet {
	return t.alphabet
}

// Rules returns the allophone rules of t in order.
func (t *Transcriber) Rules() []Rule {
	return t.rules
}

// Segment is a sound of a word together with its spelling.
type Segment struct {
	Spelling string      // orthographic letters of the segment
	Sound    sound.Sound // sound from the first pass
	Symbol   string      // phonetic symbol after allophone rules
}

// FirstPass segments a word into sounds. Diphthongs take precedence over
// geminates. It returns an error with code core.ELOOKUP if a letter is not
// part of the alphabet.
func (t *Transcriber) FirstPass(word string) ([]sound.Sound, error) {
	segments, err := t.segment(word)
	if err != nil {
		return nil, err
	}
	sounds := make([]sound.Sound, len(segments))
	for i, seg := range segments {
		sounds[i] = seg.Sound
	}
	return sounds, nil
}

func (t *Transcriber) segment(word string) ([]Segment, error) {
	letters := orthography.Letters(orthography.Lower(word))
	segments := make([]Segment, 0, len(letters))
	lookup := func(letter string) (sound.Sound, error) {
		s, ok := t.alphabet.Letter(letter)
		if !ok {
			tracer().Debugf("no sound for letter %q in %q", letter, word)
			return s, core.Error(core.ELOOKUP, "no phonetic mapping for letter %q in %q", letter, word)
		}
		return s, nil
	}
	for i := 0; i < len(letters); {
		if i+1 < len(letters) {
			if d, ok := t.alphabet.Diphthong(letters[i], letters[i+1]); ok {
				segments = append(segments, Segment{Spelling: letters[i] + letters[i+1], Sound: d})
				i += 2
				continue
			}
			if letters[i] == letters[i+1] {
				s, err := lookup(letters[i])
				if err != nil {
					return nil, err
				}
				segments = append(segments, Segment{Spelling: letters[i] + letters[i+1], Sound: s.Lengthen()})
				i += 2
				continue
			}
		}
		s, err := lookup(letters[i])
		if err != nil {
			return nil, err
		}
		segments = append(segments, Segment{Spelling: letters[i], Sound: s})
		i++
	}
	return segments, nil
}

// SecondPass applies the allophone rules to a sequence of sounds and
// returns the phonetic symbol of every segment.
func (t *Transcriber) SecondPass(sounds []sound.Sound) []string {
	symbols := make([]string, len(sounds))
	if len(sounds) == 1 {
		symbols[0] = sounds[0].Symbol()
		return symbols
	}
	for i, s := range sounds {
		symbols[i] = s.Symbol()
		pos := At(sounds, i)
		for _, r := range t.byTrigger[s.Symbol()] {
			if r.Position.Matches(pos) {
				tracer().Debugf("rule %s applies to segment %d", r, i)
				symbols[i] = r.Replacement.Symbol()
				break
			}
		}
	}
	return symbols
}

// Segments runs both passes over a word.
func (t *Transcriber) Segments(word string) ([]Segment, error) {
	segments, err := t.segment(word)
	if err != nil {
		return nil, err
	}
	sounds := make([]sound.Sound, len(segments))
	for i, seg := range segments {
		sounds[i] = seg.Sound
	}
	for i, sym := range t.SecondPass(sounds) {
		segments[i].Symbol = sym
	}
	return segments, nil
}

// Transcribe converts a word to its phonetic string.
func (t *Transcriber) Transcribe(word string) (string, error) {
	segments, err := t.Segments(word)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Symbol)
	}
	return b.String(), nil
}

// TranscribePhrase transcribes words and joins them with spaces. If
// brackets is set, the result is enclosed in square brackets. The first
// word which cannot be transcribed aborts the phrase.
func (t *Transcriber) TranscribePhrase(words []string, brackets bool) (string, error) {
	phonetic := make([]string, 0, len(words))
	for _, w := range words {
		p, err := t.Transcribe(w)
		if err != nil {
			return "", err
		}
		phonetic = append(phonetic, p)
	}
	s := strings.Join(phonetic, " ")
	if brackets {
		s = "[" + s + "]"
	}
	return s, nil
}
