package sound

import (
	"fmt"
	"strings"

	"github.com/npillmayer/skald/core"
	"github.com/npillmayer/skald/core/option"
)

// LengthMark is appended to the symbol of lengthened sounds.
const LengthMark = "ː"

// ConsonantFeatures is the feature bundle of a consonant. Zero values of
// the enum fields and unset options mean "don't care".
type ConsonantFeatures struct {
	Place    Place
	Manner   Manner
	Voiced   option.T[bool]
	Geminate option.T[bool]
}

// VowelFeatures is the feature bundle of a vowel. Zero values of
// the enum fields and unset options mean "don't care".
type VowelFeatures struct {
	Height   Height
	Backness Backness
	Rounded  option.T[bool]
	Length   Length
}

// Sound is a consonant or a vowel, together with its phonetic symbol.
//
// Sounds are values. A Sound with every feature set is concrete, all other
// sounds are patterns. Patterns are created with ConsonantPattern and
// VowelPattern and are used as the pattern argument of Match.
type Sound struct {
	kind   Kind
	cons   ConsonantFeatures
	vowel  VowelFeatures
	symbol string
}

// NewConsonant creates a concrete consonant. It returns an error with code
// core.EINVALID if place or manner is unset or outside its domain, or if
// symbol is empty.
func NewConsonant(place Place, manner Manner, voiced, geminate bool, symbol string) (Sound, error) {
	if symbol == "" {
		return Sound{}, core.Error(core.EINVALID, "consonant %s %s needs a phonetic symbol", place, manner)
	}
	f := ConsonantFeatures{
		Place:    place,
		Manner:   manner,
		Voiced:   option.Some(voiced),
		Geminate: option.Some(geminate),
	}
	s, err := ConsonantPattern(f)
	if err != nil {
		return Sound{}, err
	}
	if place == PlaceUnset || manner == MannerUnset {
		tracer().Debugf("consonant %q is missing place or manner", symbol)
		return Sound{}, core.Error(core.EINVALID, "consonant %q needs place and manner", symbol)
	}
	s.symbol = symbol
	return s, nil
}

// NewVowel creates a concrete vowel. It returns an error with code
// core.EINVALID if height, backness or length is unset or outside its
// domain, or if symbol is empty.
func NewVowel(height Height, backness Backness, rounded bool, length Length, symbol string) (Sound, error) {
	if symbol == "" {
		return Sound{}, core.Error(core.EINVALID, "vowel %s %s needs a phonetic symbol", height, backness)
	}
	f := VowelFeatures{
		Height:   height,
		Backness: backness,
		Rounded:  option.Some(rounded),
		Length:   length,
	}
	s, err := VowelPattern(f)
	if err != nil {
		return Sound{}, err
	}
	if height == HeightUnset || backness == BacknessUnset || length == LengthUnset {
		tracer().Debugf("vowel %q is not fully specified", symbol)
		return Sound{}, core.Error(core.EINVALID, "vowel %q needs height, backness and length", symbol)
	}
	s.symbol = symbol
	return s, nil
}

// MustConsonant is like NewConsonant, but panics on invalid features.
// It is meant for static sound tables.
func MustConsonant(place Place, manner Manner, voiced, geminate bool, symbol string) Sound {
	s, err := NewConsonant(place, manner, voiced, geminate, symbol)
	if err != nil {
		panic(err)
	}
	return s
}

// MustVowel is like NewVowel, but panics on invalid features.
func MustVowel(height Height, backness Backness, rounded bool, length Length, symbol string) Sound {
	s, err := NewVowel(height, backness, rounded, length, symbol)
	if err != nil {
		panic(err)
	}
	return s
}

// ConsonantPattern creates a consonant with possibly unset features.
// Features which are set must be inside their domain.
func ConsonantPattern(f ConsonantFeatures) (Sound, error) {
	if f.Place >= placeStopper || f.Manner >= mannerStopper {
		tracer().Debugf("consonant features out of range: %d/%d", f.Place, f.Manner)
		return Sound{}, core.Error(core.EINVALID, "consonant feature out of range (place=%d, manner=%d)",
			f.Place, f.Manner)
	}
	return Sound{kind: Consonant, cons: f}, nil
}

// VowelPattern creates a vowel with possibly unset features.
// Features which are set must be inside their domain.
func VowelPattern(f VowelFeatures) (Sound, error) {
	if f.Height >= heightStopper || f.Backness >= backnessStopper || f.Length >= lengthStopper {
		tracer().Debugf("vowel features out of range: %d/%d/%d", f.Height, f.Backness, f.Length)
		return Sound{}, core.Error(core.EINVALID, "vowel feature out of range (height=%d, backness=%d, length=%d)",
			f.Height, f.Backness, f.Length)
	}
	return Sound{kind: Vowel, vowel: f}, nil
}

// AnyConsonant is a pattern matching every consonant.
func AnyConsonant() Sound {
	return Sound{kind: Consonant}
}

// AnyVowel is a pattern matching every vowel.
func AnyVowel() Sound {
	return Sound{kind: Vowel}
}

// --- Accessors -------------------------------------------------------------

func (s Sound) Kind() Kind {
	return s.kind
}

func (s Sound) IsVowel() bool {
	return s.kind == Vowel
}

func (s Sound) IsConsonant() bool {
	return s.kind == Consonant
}

// Symbol is the phonetic symbol of s. Patterns usually have none.
func (s Sound) Symbol() string {
	return s.symbol
}

// WithSymbol returns a copy of s carrying a different phonetic symbol.
func (s Sound) WithSymbol(symbol string) Sound {
	s.symbol = symbol
	return s
}

// ConsonantFeatures returns the features of a consonant. For vowels all
// features are unset.
func (s Sound) ConsonantFeatures() ConsonantFeatures {
	return s.cons
}

// VowelFeatures returns the features of a vowel. For consonants all
// features are unset.
func (s Sound) VowelFeatures() VowelFeatures {
	return s.vowel
}

func (s Sound) Place() Place       { return s.cons.Place }
func (s Sound) Manner() Manner     { return s.cons.Manner }
func (s Sound) Voiced() bool       { return s.cons.Voiced.UnwrapOr(false) }
func (s Sound) Geminate() bool     { return s.cons.Geminate.UnwrapOr(false) }
func (s Sound) Height() Height     { return s.vowel.Height }
func (s Sound) Backness() Backness { return s.vowel.Backness }
func (s Sound) Rounded() bool      { return s.vowel.Rounded.UnwrapOr(false) }
func (s Sound) Length() Length     { return s.vowel.Length }

// IsConcrete is true if every feature of s is set and s has a symbol.
func (s Sound) IsConcrete() bool {
	if s.symbol == "" {
		return false
	}
	switch s.kind {
	case Consonant:
		return s.cons.Place != PlaceUnset && s.cons.Manner != MannerUnset &&
			!s.cons.Voiced.IsNone() && !s.cons.Geminate.IsNone()
	case Vowel:
		return s.vowel.Height != HeightUnset && s.vowel.Backness != BacknessUnset &&
			!s.vowel.Rounded.IsNone() && s.vowel.Length != LengthUnset
	}
	return false
}

// --- Matching and lengthening ----------------------------------------------

// Match is true if s has every feature which is set in pattern. Features
// unset in pattern match anything. A nil pattern matches every sound, a
// pattern of a different kind matches none. Symbols are not compared.
func (s Sound) Match(pattern *Sound) bool {
	if pattern == nil {
		return true
	}
	if pattern.kind != s.kind {
		return false
	}
	switch s.kind {
	case Consonant:
		p := pattern.cons
		return (p.Place == PlaceUnset || p.Place == s.cons.Place) &&
			(p.Manner == MannerUnset || p.Manner == s.cons.Manner) &&
			matchFlag(p.Voiced, s.cons.Voiced) &&
			matchFlag(p.Geminate, s.cons.Geminate)
	case Vowel:
		p := pattern.vowel
		return (p.Height == HeightUnset || p.Height == s.vowel.Height) &&
			(p.Backness == BacknessUnset || p.Backness == s.vowel.Backness) &&
			matchFlag(p.Rounded, s.vowel.Rounded) &&
			(p.Length == LengthUnset || p.Length == s.vowel.Length)
	}
	return true
}

func matchFlag(pattern, value option.T[bool]) bool {
	want, ok := pattern.Get()
	if !ok {
		return true
	}
	have, ok := value.Get()
	return ok && have == want
}

// Lengthen returns the long (vowels) or geminate (consonants) variant of s,
// with the length mark appended to its symbol. Lengthening a sound which is
// already long returns it unchanged.
func (s Sound) Lengthen() Sound {
	switch s.kind {
	case Consonant:
		if s.Geminate() {
			return s
		}
		s.cons.Geminate = option.Some(true)
	case Vowel:
		if s.vowel.Length == Long || s.vowel.Length == Overlong {
			return s
		}
		s.vowel.Length = Long
	default:
		return s
	}
	if !strings.HasSuffix(s.symbol, LengthMark) {
		s.symbol += LengthMark
	}
	return s
}

func (s Sound) String() string {
	var features []string
	switch s.kind {
	case Consonant:
		if v, ok := s.cons.Voiced.Get(); ok {
			features = append(features, voicing(v))
		}
		if v, ok := s.cons.Geminate.Get(); ok && v {
			features = append(features, "geminate")
		}
		features = appendSet(features, s.cons.Place.String(), s.cons.Manner.String())
	case Vowel:
		features = appendSet(features, s.vowel.Length.String(), s.vowel.Height.String(),
			s.vowel.Backness.String())
		if v, ok := s.vowel.Rounded.Get(); ok {
			features = append(features, rounding(v))
		}
	default:
		return "<no sound>"
	}
	features = append(features, s.kind.String())
	return fmt.Sprintf("%s<%s>", s.symbol, strings.Join(features, " "))
}

func appendSet(features []string, names ...string) []string {
	for _, n := range names {
		if n != "" {
			features = append(features, n)
		}
	}
	return features
}

func voicing(v bool) string {
	if v {
		return "voiced"
	}
	return "voiceless"
}

func rounding(r bool) string {
	if r {
		return "rounded"
	}
	return "unrounded"
}
