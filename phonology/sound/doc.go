/*
Package sound implements a feature model for speech sounds.

A Sound is either a consonant (place, manner, voicing, gemination) or a
vowel (height, backness, roundedness, length), together with its phonetic
symbol. Sounds with all features set are concrete; sounds with some
features left unset are patterns and are used as wildcards when matching
phonetic environments.

	t, _ := sound.NewConsonant(sound.Alveolar, sound.Stop, false, false, "t")
	voiceless, _ := sound.ConsonantPattern(sound.ConsonantFeatures{Voiced: option.Some(false)})
	t.Match(&voiceless)   // true
	t.Lengthen().Symbol() // "tː"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sound

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'skald.phonology'.
func tracer() tracing.Trace {
	return tracing.Select("skald.phonology")
}
