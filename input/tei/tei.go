/*
Package tei reads poems encoded in TEI-XML.

The TEI guidelines mark up verse with line groups: an <lg> element holds
the <l> elements of one stanza. Stanzas returns one string per line group
which contains lines, with the lines separated by newlines. Namespaces are
ignored, so both plain and namespaced TEI documents are accepted.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tei

import (
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/skald/core"
)

// tracer traces with key 'skald.input'.
func tracer() tracing.Trace {
	return tracing.Select("skald.input")
}

var (
	// line groups with at least one line of their own
	stanzaExpr = xpath.MustCompile(`//*[local-name()='lg'][*[local-name()='l']]`)
	lineExpr   = xpath.MustCompile(`*[local-name()='l']`)
)

// Stanzas parses a TEI document and returns its stanzas. Whitespace inside
// a line is collapsed, empty lines are dropped.
//
// Malformed XML results in an error with code core.EINPUT.
func Stanzas(r io.Reader) ([]string, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.EINPUT, "cannot parse TEI input")
	}
	var stanzas []string
	for i, lg := range xmlquery.QuerySelectorAll(doc, stanzaExpr) {
		var lines []string
		for _, l := range xmlquery.QuerySelectorAll(lg, lineExpr) {
			if text := strings.Join(strings.Fields(l.InnerText()), " "); text != "" {
				lines = append(lines, text)
			}
		}
		if len(lines) == 0 {
			continue
		}
		tracer().Debugf("stanza %d (n=%q) has %d lines", i+1, lg.SelectAttr("n"), len(lines))
		stanzas = append(stanzas, strings.Join(lines, "\n"))
	}
	if len(stanzas) == 0 {
		tracer().Infof("TEI document contains no line groups")
	}
	return stanzas, nil
}
