/*
Package verse structures Old Norse poems.

Eddic poems are written down as short lines (half-lines). Depending on the
meter, short lines pair up to long lines: in fornyrðislag every two short
lines form a long line, in ljóðaháttr a long line of two short lines is
followed by a single full line, twice per stanza.

Meters are recognized by counting the lines of a stanza only; there is no
metrical scanning.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package verse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'skald.prosody'.
func tracer() tracing.Trace {
	return tracing.Select("skald.prosody")
}
