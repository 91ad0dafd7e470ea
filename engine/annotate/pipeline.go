package annotate

import (
	"github.com/npillmayer/skald/core"
	"github.com/npillmayer/skald/core/parameters"
	"github.com/npillmayer/skald/lang/non"
	"github.com/npillmayer/skald/phonology/syllable"
	"github.com/npillmayer/skald/prosody/alliteration"
)

// Pipeline is a sequence of processes.
type Pipeline struct {
	Processes []Process
}

// Run hands doc through all processes of the pipeline. The first failing
// process stops the pipeline; its error is wrapped with the process name.
func (p Pipeline) Run(doc *Doc) (*Doc, error) {
	for _, proc := range p.Processes {
		tracer().Debugf("running process %s", proc.Name())
		next, err := proc.Run(doc)
		if err != nil {
			tracer().Errorf("process %s failed: %v", proc.Name(), err)
			return nil, core.WrapError(err, core.Code(err), "%s: %s", proc.Name(), core.UserMessage(err))
		}
		doc = next
	}
	return doc, nil
}

// Analyze runs the pipeline on a text.
func (p Pipeline) Analyze(text string) (*Doc, error) {
	return p.Run(&Doc{Raw: text})
}

// OldNorse creates the default pipeline for Old Norse texts: tokenization,
// punctuation removal, transcription, syllabification and prosody. If regs
// is nil, default parameters are used.
func OldNorse(regs *parameters.AnalysisRegisters) (Pipeline, error) {
	if regs == nil {
		regs = parameters.NewAnalysisRegisters()
	}
	syl, err := syllable.ForLanguageName(regs.S(parameters.P_LANGUAGE))
	if err != nil {
		return Pipeline{}, err
	}
	syl = syl.WithBreakGeminants(regs.B(parameters.P_BREAKGEMINANTS))
	tr := non.NewTranscriber()
	return Pipeline{Processes: []Process{
		Tokenization{},
		PunctuationRemoval{Marks: regs.S(parameters.P_PUNCTUATION)},
		Transcription{Transcriber: tr},
		Syllabification{Syllabifier: syl},
		Prosody{Analyzer: alliteration.New(tr)},
	}}, nil
}
