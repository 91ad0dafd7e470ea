package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/skald/core"
	"github.com/npillmayer/skald/core/parameters"
	"github.com/npillmayer/skald/lang/non"
	"github.com/npillmayer/skald/orthography"
	"github.com/npillmayer/skald/phonology/syllable"
	"github.com/npillmayer/skald/phonology/transcription"
	"github.com/npillmayer/skald/prosody/alliteration"
	"github.com/npillmayer/skald/prosody/verse"
	"github.com/pterm/pterm"
)

// tracer traces with key 'skald.cli'
func tracer() tracing.Trace {
	return tracing.Select("skald.cli")
}

var traceKeys = []string{"skald.cli", "skald.text", "skald.phonology", "skald.prosody",
	"skald.engine", "skald.input"}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	rulesfile := flag.String("rules", "", "File with additional transcription rules")
	poemfile := flag.String("poem", "", "Poem to analyze (text, HTML or TEI)")
	selector := flag.String("selector", "", "CSS selector for stanzas of HTML poems")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for _, key := range traceKeys {
		conf["trace."+key] = *tlevel
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the Skald CLI")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	intp := &Intp{
		regs:     parameters.NewAnalysisRegisters(),
		tr:       non.NewTranscriber(),
		selector: *selector,
	}
	if err := intp.loadRules(*rulesfile); err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	if *poemfile != "" {
		if err := intp.analyzePoem(*poemfile); err != nil {
			core.UserError(err)
			os.Exit(4)
		}
	}
	//
	// set up REPL
	repl, err := readline.New("skald > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D or 'quit', get help with 'help'")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	regs     *parameters.AnalysisRegisters
	tr       *transcription.Transcriber
	selector string
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(line)
		if err != nil {
			pterm.Error.Println(describe(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

var errUsage = errors.New("usage")

func (intp *Intp) execute(line string) (bool, error) {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	tracer().Infof("command %s %v", cmd, args)
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "syl":
		return false, intp.syllabify(args)
	case "ipa":
		return false, intp.transcribe(args)
	case "allit":
		return false, intp.alliterate(args)
	case "verse":
		if len(args) != 1 {
			return false, core.WrapError(errUsage, core.EINPUT, "verse <file>")
		}
		return false, intp.analyzePoem(args[0])
	case "set":
		if len(args) < 2 {
			return false, core.WrapError(errUsage, core.EINPUT, "set <parameter> <value>")
		}
		return false, intp.set(args[0], strings.Join(args[1:], " "))
	default:
		help(cmd)
	}
	return false, nil
}

func (intp *Intp) words(args []string) []string {
	return orthography.NewPunctuation(intp.regs.S(parameters.P_PUNCTUATION)).StripAll(args)
}

func (intp *Intp) syllabifier() (*syllable.Syllabifier, error) {
	syl, err := syllable.ForLanguageName(intp.regs.S(parameters.P_LANGUAGE))
	if err != nil {
		return nil, err
	}
	return syl.WithBreakGeminants(intp.regs.B(parameters.P_BREAKGEMINANTS)), nil
}

func (intp *Intp) syllabify(args []string) error {
	syl, err := intp.syllabifier()
	if err != nil {
		return err
	}
	var out []string
	for _, w := range intp.words(args) {
		syllables, err := syl.Syllabify(orthography.Lower(w))
		if err != nil {
			return err
		}
		out = append(out, strings.Join(syllables, "·"))
	}
	pterm.Println(strings.Join(out, " "))
	return nil
}

func (intp *Intp) transcribe(args []string) error {
	phrase, err := intp.tr.TranscribePhrase(intp.words(args), intp.regs.B(parameters.P_BRACKETS))
	if err != nil {
		return err
	}
	pterm.Println(phrase)
	return nil
}

func (intp *Intp) alliterate(args []string) error {
	pairs, err := alliteration.New(intp.tr).Pairs(intp.words(args))
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		pterm.Info.Println("no alliteration")
		return nil
	}
	for _, p := range pairs {
		pterm.Printfln("%-4s %s", p.Head, p)
	}
	return nil
}

func (intp *Intp) set(name, value string) error {
	p, ok := parameters.ParameterByName(name)
	if !ok {
		return core.Error(core.ELOOKUP, "no parameter named %q", name)
	}
	if err := intp.regs.PushString(p, value); err != nil {
		return err
	}
	pterm.Info.Printfln("%s = %v", p, intp.regs.Get(p))
	return nil
}

func (intp *Intp) loadRules(path string) error {
	if path == "" {
		return nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return core.WrapError(err, core.ELOOKUP, "cannot read rules file %s", path)
	}
	rules, err := transcription.ParseRules(string(src), non.Inventory())
	if err != nil {
		return err
	}
	intp.tr = intp.tr.WithRules(rules...)
	pterm.Info.Printfln("%d additional transcription rules loaded", len(rules))
	return nil
}

func (intp *Intp) analyzePoem(path string) error {
	stanzas, err := readStanzas(path, intp.selector)
	if err != nil {
		return err
	}
	if len(stanzas) == 0 {
		pterm.Info.Printfln("no stanzas found in %s", path)
	}
	for i, text := range stanzas {
		if err := intp.analyzeStanza(i+1, text); err != nil {
			return err
		}
	}
	return nil
}

func (intp *Intp) analyzeStanza(n int, text string) error {
	v, err := verse.Load(text, intp.regs)
	if err != nil {
		return err
	}
	v.SetTranscriber(intp.tr)
	if err = v.Syllabify(); err != nil {
		return err
	}
	if err = v.ToPhonetics(); err != nil {
		return err
	}
	pairs, err := v.Alliteration()
	if err != nil {
		return err
	}
	pterm.DefaultSection.Printfln("Stanza %d (%s)", n, v.Meter.Name())
	data := pterm.TableData{{"line", "text", "phonetics", "syllables", "alliteration"}}
	for i, long := range v.LongLines {
		for j, short := range long {
			var syls []string
			for _, w := range v.Syllabified[i][j] {
				syls = append(syls, strings.Join(w, "·"))
			}
			allit := ""
			if j == 0 {
				allit = fmt.Sprint(pairs[i])
			}
			data = append(data, []string{
				fmt.Sprintf("%d.%d", i+1, j+1), short, v.Transcribed[i][j],
				strings.Join(syls, " "), allit,
			})
		}
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func describe(err error) string {
	if msg := core.UserMessage(err); msg != "" {
		return fmt.Sprintf("[%d] %s", core.Code(err), msg)
	}
	return err.Error()
}

func help(topic string) {
	if topic != "help" {
		pterm.Error.Printfln("unknown command %q", topic)
	}
	pterm.Println(`
	syl <words>              syllabify words
	ipa <words>              transcribe words into IPA
	allit <words>            find alliterating words of a long line
	verse <file>             analyze the stanzas of a poem file
	set <parameter> <value>  set a parameter (language, break-geminants,
	                         punctuation, brackets, min-syllables)
	quit                     leave the CLI
	`)
}
