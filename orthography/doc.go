/*
Package orthography prepares written text for phonological analysis.

Historical texts are normalized to Unicode NFC before any lookup, so that
letters like 'ǫ́' compare equal regardless of how they were keyed in.
Orthographic letters are grapheme clusters (UAX #29), not runes: a vowel
carrying a combining accent is one letter.

Words are found with a UAX #29 word breaker. Tokens keep their byte
offsets into the normalized text, which lets clients attach analysis
results back to the input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package orthography

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'skald.text'.
func tracer() tracing.Trace {
	return tracing.Select("skald.text")
}
