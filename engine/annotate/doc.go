/*
Package annotate runs analysis steps over a document.

A document starts out as raw text. A Pipeline hands it through a sequence
of processes, each of which returns a new document with additional
annotations: words with byte offsets, words stripped of punctuation,
phonetic transcriptions, syllables, and alliterating word pairs per verse.
Processes never modify the document they are given.

	pipeline, _ := annotate.OldNorse(nil)
	doc, err := pipeline.Analyze("Hljóðs bið ek allar\nhelgar kindir")
	doc.Words[0].Phonetic // "hljoːðs"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package annotate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'skald.engine'.
func tracer() tracing.Trace {
	return tracing.Select("skald.engine")
}
