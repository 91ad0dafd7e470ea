package transcription

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/npillmayer/skald/core"
	"github.com/npillmayer/skald/core/option"
	"github.com/npillmayer/skald/orthography"
	"github.com/npillmayer/skald/phonology/sound"
)

// Inventory maps phonetic symbols to concrete sounds. Rule notation refers
// to sounds by their symbols.
type Inventory map[string]sound.Sound

// Lookup finds the sound for a phonetic symbol.
func (inv Inventory) Lookup(symbol string) (sound.Sound, bool) {
	s, ok := inv[orthography.Normalize(symbol)]
	return s, ok
}

//nolint:govet // participle grammar tags are not standard struct tags
type ruleSet struct {
	Rules []*ruleDecl `parser:"@@*"`
}

//nolint:govet
type ruleDecl struct {
	Pos         lexer.Position
	Trigger     string       `parser:"@Word \"/\""`
	Rank        string       `parser:"@(\"first\" | \"inner\" | \"last\")"`
	Env         *environment `parser:"@@?"`
	Replacement string       `parser:"\"->\" @Word"`
}

//nolint:govet
type environment struct {
	Before *element `parser:"@@? \"_\""`
	After  *element `parser:"@@?"`
}

//nolint:govet
type element struct {
	Class    string     `parser:"  @(\"V\" | \"C\")"`
	Features []*feature `parser:"| \"[\" @@ ( \",\" @@ )* \"]\""`
	Symbol   string     `parser:"| @Word"`
}

//nolint:govet
type feature struct {
	Sign string `parser:"@(\"+\" | \"-\")?"`
	Name string `parser:"@Word"`
}

var ruleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Punct", Pattern: `[/_\[\],+\-]`},
	{Name: "Word", Pattern: `[^\s/_\[\],+#\-]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var ruleParser = participle.MustBuild[ruleSet](
	participle.Lexer(ruleLexer),
	participle.Elide("Whitespace", "Comment"),
)

// ParseRules reads allophone rules in rule notation. Symbols are resolved
// against inventory. Errors have code core.EINVALID.
func ParseRules(src string, inventory Inventory) ([]Rule, error) {
	set, err := ruleParser.ParseString("", orthography.Normalize(src))
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse allophone rules")
	}
	rules := make([]Rule, 0, len(set.Rules))
	for _, decl := range set.Rules {
		r, err := decl.rule(inventory)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	tracer().Debugf("parsed %d allophone rules", len(rules))
	return rules, nil
}

// MustParseRules is like ParseRules, but panics on errors.
func MustParseRules(src string, inventory Inventory) []Rule {
	rules, err := ParseRules(src, inventory)
	if err != nil {
		panic(err)
	}
	return rules
}

func (decl *ruleDecl) rule(inventory Inventory) (Rule, error) {
	trigger, ok := inventory.Lookup(decl.Trigger)
	if !ok {
		return Rule{}, core.Error(core.EINVALID, "rule at %s: unknown trigger symbol %q", decl.Pos, decl.Trigger)
	}
	replacement, ok := inventory.Lookup(decl.Replacement)
	if !ok {
		return Rule{}, core.Error(core.EINVALID, "rule at %s: unknown replacement symbol %q", decl.Pos,
			decl.Replacement)
	}
	r := Rule{Trigger: trigger, Replacement: replacement}
	switch decl.Rank {
	case "first":
		r.Position.Rank = First
	case "inner":
		r.Position.Rank = Inner
	case "last":
		r.Position.Rank = Last
	}
	if decl.Env != nil {
		var err error
		if r.Position.Before, err = decl.Env.Before.pattern(inventory); err != nil {
			return Rule{}, core.WrapError(err, core.EINVALID, "rule at %s", decl.Pos)
		}
		if r.Position.After, err = decl.Env.After.pattern(inventory); err != nil {
			return Rule{}, core.WrapError(err, core.EINVALID, "rule at %s", decl.Pos)
		}
	}
	return r, nil
}

func (e *element) pattern(inventory Inventory) (*sound.Sound, error) {
	if e == nil {
		return nil, nil
	}
	var s sound.Sound
	switch {
	case e.Class == "V":
		s = sound.AnyVowel()
	case e.Class == "C":
		s = sound.AnyConsonant()
	case len(e.Features) > 0:
		var err error
		if s, err = bundle(e.Features); err != nil {
			return nil, err
		}
	default:
		var ok bool
		if s, ok = inventory.Lookup(e.Symbol); !ok {
			return nil, core.Error(core.EINVALID, "unknown symbol %q", e.Symbol)
		}
	}
	return &s, nil
}

// bundle creates a pattern sound from a list of features.
func bundle(features []*feature) (sound.Sound, error) {
	var cf sound.ConsonantFeatures
	var vf sound.VowelFeatures
	consonant, vowel := false, false
	for _, f := range features {
		positive := f.Sign != "-"
		switch strings.ToLower(f.Name) {
		case "voiced":
			cf.Voiced, consonant = option.Some(positive), true
			continue
		case "geminate":
			cf.Geminate, consonant = option.Some(positive), true
			continue
		case "rounded":
			vf.Rounded, vowel = option.Some(positive), true
			continue
		}
		if f.Sign != "" {
			return sound.Sound{}, core.Error(core.EINVALID, "feature %q does not take a sign", f.Name)
		}
		if p, ok := sound.ParsePlace(f.Name); ok {
			cf.Place, consonant = p, true
		} else if m, ok := sound.ParseManner(f.Name); ok {
			cf.Manner, consonant = m, true
		} else if h, ok := sound.ParseHeight(f.Name); ok {
			vf.Height, vowel = h, true
		} else if b, ok := sound.ParseBackness(f.Name); ok {
			vf.Backness, vowel = b, true
		} else if l, ok := sound.ParseLength(f.Name); ok {
			vf.Length, vowel = l, true
		} else {
			return sound.Sound{}, core.Error(core.EINVALID, "unknown feature %q", f.Name)
		}
	}
	if consonant && vowel {
		return sound.Sound{}, core.Error(core.EINVALID, "features mix consonant and vowel")
	}
	if vowel {
		return sound.VowelPattern(vf)
	}
	return sound.ConsonantPattern(cf)
}
