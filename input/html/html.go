/*
Package html reads poems from HTML pages.

Editions of Eddic poetry on the web usually put every stanza into an
element of its own, with short lines separated by <br>. Stanzas extracts
the text of the elements matching a CSS selector, one stanza per element
and one short line per line of text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/skald/core"
	"golang.org/x/net/html"
)

// tracer traces with key 'skald.input'.
func tracer() tracing.Trace {
	return tracing.Select("skald.input")
}

// DefaultSelector is used if Stanzas is called with an empty selector.
const DefaultSelector = "p"

// Stanzas parses an HTML document and returns the text of every element
// matching selector. Line breaks and <br> elements separate short lines;
// blank lines are dropped and every line is trimmed.
//
// An unparsable selector results in an error with code core.EINVALID,
// unreadable HTML in an error with code core.EINPUT.
func Stanzas(r io.Reader, selector string) ([]string, error) {
	if selector == "" {
		selector = DefaultSelector
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid stanza selector %q", selector)
	}
	root, err := html.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.EINPUT, "cannot parse HTML input")
	}
	var stanzas []string
	for _, n := range sel.MatchAll(root) {
		var b strings.Builder
		collectText(n, &b)
		if stanza := cleanLines(b.String()); stanza != "" {
			stanzas = append(stanzas, stanza)
		}
	}
	tracer().Debugf("selector %q yields %d stanzas", selector, len(stanzas))
	return stanzas, nil
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "br":
			b.WriteByte('\n')
			return
		case "script", "style":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

func cleanLines(text string) string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.Join(strings.Fields(l), " "); l != "" {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n")
}
