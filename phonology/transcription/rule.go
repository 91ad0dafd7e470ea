package transcription

import (
	"fmt"
	"strings"

	"github.com/npillmayer/skald/phonology/sound"
)

// Rank is the place of a segment within a word.
type Rank uint8

const (
	First Rank = iota + 1
	Inner
	Last
)

func (r Rank) String() string {
	switch r {
	case First:
		return "first"
	case Inner:
		return "inner"
	case Last:
		return "last"
	}
	return "rank?"
}

// Position is a segment's place in a word together with its neighbouring
// sounds. Before is nil for the first segment, After is nil for the last.
// In rule patterns, nil neighbours are wildcards.
type Position struct {
	Rank   Rank
	Before *sound.Sound
	After  *sound.Sound
}

// At returns the position of segment i in sounds.
func At(sounds []sound.Sound, i int) Position {
	var pos Position
	switch {
	case i == 0:
		pos.Rank = First
	case i == len(sounds)-1:
		pos.Rank = Last
	default:
		pos.Rank = Inner
	}
	if i > 0 {
		pos.Before = &sounds[i-1]
	}
	if i < len(sounds)-1 {
		pos.After = &sounds[i+1]
	}
	return pos
}

// Matches is true if the actual position of a segment fits the pattern p.
// Ranks must be equal. A neighbour is only compared if both p and actual
// have one.
func (p Position) Matches(actual Position) bool {
	if p.Rank != actual.Rank {
		return false
	}
	if p.Before != nil && actual.Before != nil && !actual.Before.Match(p.Before) {
		return false
	}
	if p.After != nil && actual.After != nil && !actual.After.Match(p.After) {
		return false
	}
	return true
}

// Rule replaces the trigger sound by the replacement sound, if the
// trigger occurs at a matching position.
type Rule struct {
	Position    Position
	Trigger     sound.Sound
	Replacement sound.Sound
}

// NewRule creates a rule. before and after may be nil.
func NewRule(rank Rank, before, after *sound.Sound, trigger, replacement sound.Sound) Rule {
	return Rule{
		Position:    Position{Rank: rank, Before: before, After: after},
		Trigger:     trigger,
		Replacement: replacement,
	}
}

// Applies is true if r is triggered by s at position pos.
func (r Rule) Applies(s sound.Sound, pos Position) bool {
	return r.Trigger.Symbol() == s.Symbol() && r.Position.Matches(pos)
}

// String renders r in rule notation.
func (r Rule) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s / %s", r.Trigger.Symbol(), r.Position.Rank)
	if r.Position.Before != nil || r.Position.After != nil {
		if r.Position.Before != nil {
			b.WriteString(" " + patternNotation(*r.Position.Before))
		}
		b.WriteString(" _")
		if r.Position.After != nil {
			b.WriteString(" " + patternNotation(*r.Position.After))
		}
	}
	b.WriteString(" -> " + r.Replacement.Symbol())
	return b.String()
}

func patternNotation(s sound.Sound) string {
	if s.Symbol() != "" {
		return s.Symbol()
	}
	var features []string
	flag := func(name string, v bool, ok bool) {
		if !ok {
			return
		}
		if v {
			features = append(features, "+"+name)
		} else {
			features = append(features, "-"+name)
		}
	}
	name := func(n string) {
		if n != "" {
			features = append(features, strings.ReplaceAll(n, "-", ""))
		}
	}
	switch s.Kind() {
	case sound.Consonant:
		f := s.ConsonantFeatures()
		name(f.Place.String())
		name(f.Manner.String())
		v, ok := f.Voiced.Get()
		flag("voiced", v, ok)
		v, ok = f.Geminate.Get()
		flag("geminate", v, ok)
		if len(features) == 0 {
			return "C"
		}
	case sound.Vowel:
		f := s.VowelFeatures()
		name(f.Height.String())
		name(f.Backness.String())
		name(f.Length.String())
		v, ok := f.Rounded.Get()
		flag("rounded", v, ok)
		if len(features) == 0 {
			return "V"
		}
	}
	return "[" + strings.Join(features, ", ") + "]"
}
