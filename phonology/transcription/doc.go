/*
Package transcription converts orthographic words to phonetic strings.

Transcription runs in two passes. The first pass segments a word into
sounds, looking up letters in an Alphabet: a two-letter diphthong spelling
becomes one vowel, two identical letters become one lengthened sound, every
other letter maps to its sound. The second pass applies allophone rules:
for every segment, the rules triggered by the segment's symbol are tried in
order, and the first rule whose Position pattern matches the segment's
phonetic environment determines the output symbol. Segments without a
matching rule keep their symbol.

Rules are either Go values or are written in a small notation:

	# f is voiced between voiced sounds
	f / first -> f
	f / inner [-voiced] _ -> f
	f / inner -> v
	g / inner n _ V -> g

A rule names its trigger symbol, the rank of the segment within the word
(first, inner or last), optionally the sounds before and after the segment
('_' marks the segment itself), and the replacement symbol. Environment
sounds are inventory symbols, V or C for any vowel or consonant, or
bundles of features such as [+voiced, velar].

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package transcription

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'skald.phonology'.
func tracer() tracing.Trace {
	return tracing.Select("skald.phonology")
}
