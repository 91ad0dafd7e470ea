package sound

import "strings"

// Kind tells consonants from vowels.
type Kind uint8

const (
	Consonant Kind = iota + 1
	Vowel
)

func (k Kind) String() string {
	switch k {
	case Consonant:
		return "consonant"
	case Vowel:
		return "vowel"
	}
	return "?"
}

// Place is the place of articulation of a consonant.
// The zero value leaves the place unspecified.
type Place uint8

const (
	PlaceUnset Place = iota
	Bilabial
	LabioDental
	Dental
	Alveolar
	PostAlveolar
	Retroflex
	Palatal
	Velar
	Uvular
	Glottal
	placeStopper
)

var placeNames = [...]string{"", "bilabial", "labio-dental", "dental", "alveolar",
	"post-alveolar", "retroflex", "palatal", "velar", "uvular", "glottal"}

func (p Place) String() string {
	if p < placeStopper {
		return placeNames[p]
	}
	return "place?"
}

// Manner is the manner of articulation of a consonant.
// The zero value leaves the manner unspecified.
type Manner uint8

const (
	MannerUnset Manner = iota
	Nasal
	Stop
	Lateral
	Fricative
	Trill
	mannerStopper
)

// Linguists of the 19th century spelled it "frictative", and so do some
// of the grammars these tables are taken from.
var mannerNames = [...]string{"", "nasal", "stop", "lateral", "frictative", "trill"}

func (m Manner) String() string {
	if m < mannerStopper {
		return mannerNames[m]
	}
	return "manner?"
}

// Height is the vertical tongue position of a vowel.
type Height uint8

const (
	HeightUnset Height = iota
	Open
	NearOpen
	OpenMid
	Mid
	CloseMid
	NearClose
	Close
	heightStopper
)

var heightNames = [...]string{"", "open", "near-open", "open-mid", "mid",
	"close-mid", "near-close", "close"}

func (h Height) String() string {
	if h < heightStopper {
		return heightNames[h]
	}
	return "height?"
}

// Backness is the horizontal tongue position of a vowel.
type Backness uint8

const (
	BacknessUnset Backness = iota
	Front
	Central
	Back
	backnessStopper
)

var backnessNames = [...]string{"", "front", "central", "back"}

func (b Backness) String() string {
	if b < backnessStopper {
		return backnessNames[b]
	}
	return "backness?"
}

// Length is the quantity of a vowel.
type Length uint8

const (
	LengthUnset Length = iota
	Short
	Long
	Overlong
	lengthStopper
)

var lengthNames = [...]string{"", "short", "long", "overlong"}

func (l Length) String() string {
	if l < lengthStopper {
		return lengthNames[l]
	}
	return "length?"
}

// --- Parsing feature names -------------------------------------------------

// Feature names are accepted with or without hyphens, case-insensitive.
func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "")
}

func lookupName(names []string, name string) (int, bool) {
	name = normalizeName(name)
	if name == "" {
		return 0, false
	}
	for i, n := range names {
		if i > 0 && strings.ReplaceAll(n, "-", "") == name {
			return i, true
		}
	}
	return 0, false
}

// ParsePlace finds a place of articulation by name, e.g. "labio-dental".
func ParsePlace(name string) (Place, bool) {
	i, ok := lookupName(placeNames[:], name)
	return Place(i), ok
}

// ParseManner finds a manner of articulation by name. Both "fricative"
// and "frictative" are accepted.
func ParseManner(name string) (Manner, bool) {
	if normalizeName(name) == "fricative" {
		return Fricative, true
	}
	i, ok := lookupName(mannerNames[:], name)
	return Manner(i), ok
}

// ParseHeight finds a vowel height by name, e.g. "close-mid".
func ParseHeight(name string) (Height, bool) {
	i, ok := lookupName(heightNames[:], name)
	return Height(i), ok
}

// ParseBackness finds a vowel backness by name.
func ParseBackness(name string) (Backness, bool) {
	i, ok := lookupName(backnessNames[:], name)
	return Backness(i), ok
}

// ParseLength finds a vowel length by name.
func ParseLength(name string) (Length, bool) {
	i, ok := lookupName(lengthNames[:], name)
	return Length(i), ok
}
