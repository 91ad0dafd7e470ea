package verse

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/skald/core"
	"github.com/npillmayer/skald/core/parameters"
	"github.com/stretchr/testify/suite"
)

const voluspa = "Hljóðs bið ek allar\nhelgar kindir,\nmeiri ok minni\nmögu Heimdallar;\n" +
	"viltu at ek, Valföðr,\nvel fyr telja\nforn spjöll fira,\nþau er fremst of man."

const havamal = "Deyr fé,\ndeyja frændr,\ndeyr sjalfr it sama,\nek veit einn,\n" +
	"at aldrei deyr:\ndómr um dauðan hvern."

// --- Test Suite Preparation ------------------------------------------------

type VerseTestEnviron struct {
	suite.Suite
	regs *parameters.AnalysisRegisters
}

// listen for 'go test' command --> run test methods
func TestVerseFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skald.prosody")
	defer teardown()
	suite.Run(t, new(VerseTestEnviron))
}

// run once, before test suite methods
func (env *VerseTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("skald.prosody").SetTraceLevel(tracing.LevelInfo)
}

// run before every test method
func (env *VerseTestEnviron) SetupTest() {
	env.regs = parameters.NewAnalysisRegisters()
}

// --- Tests -----------------------------------------------------------------

func (env *VerseTestEnviron) TestClassification() {
	env.True(IsFornyrdhislag(voluspa))
	env.False(IsLjoodhhaattr(voluspa))
	env.True(IsLjoodhhaattr(havamal))
	env.False(IsFornyrdhislag(havamal))
	env.Equal(Fornyrdhislag, Classify(voluspa))
	env.Equal(Ljoodhhaattr, Classify(havamal+"\n\n"))
	env.Equal(Unclassified, Classify("Deyr fé"))
}

func (env *VerseTestEnviron) TestFornyrdhislagLines() {
	v := New(Fornyrdhislag, env.regs)
	env.Require().NoError(v.FromShortLinesText(voluspa))
	env.Len(v.ShortLines, 8)
	env.Equal("mögu Heimdallar;", v.ShortLines[3])
	env.Require().Len(v.LongLines, 4)
	for i, long := range v.LongLines {
		env.Equal(v.ShortLines[2*i:2*i+2], long)
	}
	long, err := Fornyrdhislag.LongLines([]string{"a", "b", "c"})
	env.NoError(err)
	env.Equal([][]string{{"a", "b"}}, long)
}

func (env *VerseTestEnviron) TestLjoodhhaattrLines() {
	v, err := Load(havamal, env.regs)
	env.Require().NoError(err)
	env.Equal(Ljoodhhaattr, v.Meter)
	sizes := make([]int, len(v.LongLines))
	for i, long := range v.LongLines {
		sizes[i] = len(long)
	}
	env.Equal([]int{2, 1, 2, 1}, sizes)
	env.Equal([]string{"deyr sjalfr it sama,"}, v.LongLines[1])
	//
	v = New(Ljoodhhaattr, env.regs)
	err = v.FromShortLinesText("Deyr fé,\ndeyja frændr,")
	env.Equal(core.EINPUT, core.Code(err))
}

func (env *VerseTestEnviron) TestSyllabify() {
	v, err := Load(voluspa, env.regs)
	env.Require().NoError(err)
	env.Require().NoError(v.Syllabify())
	expected := [][][][]string{
		{{{"hljóðs"}, {"bið"}, {"ek"}, {"al", "lar"}}, {{"hel", "gar"}, {"kin", "dir"}}},
		{{{"meir", "i"}, {"ok"}, {"min", "ni"}}, {{"mög", "u"}, {"heim", "dal", "lar"}}},
		{{{"vil", "tu"}, {"at"}, {"ek"}, {"val", "föðr"}}, {{"vel"}, {"fyr"}, {"tel", "ja"}}},
		{{{"forn"}, {"spjöll"}, {"fir", "a"}}, {{"þau"}, {"er"}, {"fremst"}, {"of"}, {"man"}}},
	}
	env.Equal(expected, v.Syllabified)
	//
	v, _ = Load(havamal, env.regs)
	env.Require().NoError(v.Syllabify())
	env.Equal([][]string{{"deyj", "a"}, {"frændr"}}, v.Syllabified[0][1])
	env.Equal([][]string{{"dómr"}, {"um"}, {"dau", "ðan"}, {"hvern"}}, v.Syllabified[3][0])
}

func (env *VerseTestEnviron) TestToPhonetics() {
	v, err := Load(havamal, env.regs)
	env.Require().NoError(err)
	env.Require().NoError(v.ToPhonetics())
	expected := [][]string{
		{"[dɐyr feː]", "[dɐyja frɛːndr]"},
		{"[dɐyr sjalvr it sama]"},
		{"[ɛk vɛit ɛinː]", "[at aldrɛi dɐyr]"},
		{"[doːmr um dɒuðan hvɛrn]"},
	}
	env.Equal(expected, v.Transcribed)
	//
	env.regs.Push(parameters.P_BRACKETS, false)
	env.Require().NoError(v.ToPhonetics())
	env.Equal("dɐyr feː", v.Transcribed[0][0])
}

func (env *VerseTestEnviron) TestNoText() {
	v := New(Fornyrdhislag, env.regs)
	env.NoError(v.Syllabify())
	env.Empty(v.Syllabified)
	env.NoError(v.ToPhonetics())
	env.Empty(v.Transcribed)
}

func (env *VerseTestEnviron) TestLookupErrorsSurface() {
	v := New(Unclassified, env.regs)
	env.Require().NoError(v.FromShortLinesText("Wyrd konungr"))
	env.Equal(core.ELOOKUP, core.Code(v.ToPhonetics()))
	env.Equal(core.EINPUT, core.Code(v.Syllabify()))
}

func (env *VerseTestEnviron) TestAlliteration() {
	v, err := Load(voluspa, env.regs)
	env.Require().NoError(err)
	pairs, err := v.Alliteration()
	env.Require().NoError(err)
	env.Require().Len(pairs, 4)
	env.Len(pairs[0], 2)
	env.Equal("Hljóðs", pairs[0][0].First)
	env.Equal("helgar", pairs[0][0].Second)
	// monosyllables do not carry staves
	env.regs.Push(parameters.P_MINSYLLABLES, 2)
	pairs, err = v.Alliteration()
	env.Require().NoError(err)
	env.Empty(pairs[0])
	env.Len(pairs[1], 3)
}
