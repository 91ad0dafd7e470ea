/*
Package parameters holds the registers steering an analysis run.

Registers are organized like TeX's parameters: clients may open a group,
push values which are local to that group, and close the group again to
restore the previous values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"strconv"
	"strings"

	"github.com/npillmayer/skald/core"
)

type AnalysisParameter int

const (
	none AnalysisParameter = iota
	P_LANGUAGE
	P_BREAKGEMINANTS
	P_PUNCTUATION
	P_BRACKETS
	P_MINSYLLABLES
	P_STOPPER
)

var parameterNames = map[AnalysisParameter]string{
	P_LANGUAGE:       "language",
	P_BREAKGEMINANTS: "break-geminants",
	P_PUNCTUATION:    "punctuation",
	P_BRACKETS:       "brackets",
	P_MINSYLLABLES:   "min-syllables",
}

func (p AnalysisParameter) String() string {
	if name, ok := parameterNames[p]; ok {
		return name
	}
	return "P_" + strconv.Itoa(int(p))
}

// ParameterByName finds a parameter by its name, as returned by String().
func ParameterByName(name string) (AnalysisParameter, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range parameterNames {
		if n == name {
			return p, true
		}
	}
	return none, false
}

type ParameterGroup struct {
	params map[AnalysisParameter]interface{}
	level  int
	next   *ParameterGroup
}

type AnalysisRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

func NewAnalysisRegisters() *AnalysisRegisters {
	regs := &AnalysisRegisters{}
	initParameters(&regs.base)
	return regs
}

// DefaultPunctuation is the set of characters stripped from tokens of a verse.
const DefaultPunctuation = ",.;!?-:"

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_LANGUAGE] = "non"                 // a BCP 47 language tag
	p[P_BREAKGEMINANTS] = true            // a flag
	p[P_PUNCTUATION] = DefaultPunctuation // a string of punctuation runes
	p[P_BRACKETS] = true                  // wrap phrase transcriptions in [ ]
	p[P_MINSYLLABLES] = 0                 // a numeric quantity (int) = # of syllables
}

func (regs *AnalysisRegisters) Begingroup() {
	regs.grouplevel++
}

func (regs *AnalysisRegisters) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

func (regs *AnalysisRegisters) Push(key AnalysisParameter, value interface{}) {
	checkKey(key)
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &ParameterGroup{}
			g.params = make(map[AnalysisParameter]interface{})
			g.level = regs.grouplevel
			g.next = regs.groups
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

// PushString sets a parameter from its textual representation, converting
// the value to the type of the parameter's default. Values which do not
// convert result in an error with code core.EINVALID.
func (regs *AnalysisRegisters) PushString(key AnalysisParameter, value string) error {
	checkKey(key)
	switch regs.base[key].(type) {
	case bool:
		b, err := strconv.ParseBool(onOff(value))
		if err != nil {
			return core.WrapError(err, core.EINVALID, "parameter %s expects a flag, not %q", key, value)
		}
		regs.Push(key, b)
	case int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return core.WrapError(err, core.EINVALID, "parameter %s expects a number, not %q", key, value)
		}
		regs.Push(key, n)
	default:
		regs.Push(key, value)
	}
	return nil
}

func (regs *AnalysisRegisters) Get(key AnalysisParameter) interface{} {
	checkKey(key)
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

func (regs *AnalysisRegisters) S(key AnalysisParameter) string {
	return regs.Get(key).(string)
}

func (regs *AnalysisRegisters) N(key AnalysisParameter) int {
	return regs.Get(key).(int)
}

func (regs *AnalysisRegisters) B(key AnalysisParameter) bool {
	return regs.Get(key).(bool)
}

func checkKey(key AnalysisParameter) {
	if key <= 0 || key >= P_STOPPER {
		panic("parameter key outside range of analysis parameters")
	}
}

func onOff(s string) string {
	switch strings.ToLower(s) {
	case "on", "yes":
		return "true"
	case "off", "no":
		return "false"
	}
	return s
}
