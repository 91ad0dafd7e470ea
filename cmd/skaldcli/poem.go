package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/skald/core"
	htmlinput "github.com/npillmayer/skald/input/html"
	"github.com/npillmayer/skald/input/tei"
)

// readStanzas loads the stanzas of a poem file. HTML and TEI files are
// recognized by their extension, everything else is read as plain text
// with stanzas separated by blank lines.
func readStanzas(path string, selector string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.ELOOKUP, "cannot open poem %s", path)
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return htmlinput.Stanzas(f, selector)
	case ".xml", ".tei":
		return tei.Stanzas(f)
	}
	text, err := io.ReadAll(f)
	if err != nil {
		return nil, core.WrapError(err, core.EINPUT, "cannot read poem %s", path)
	}
	return splitStanzas(string(text)), nil
}

func splitStanzas(text string) []string {
	var stanzas, lines []string
	flush := func() {
		if len(lines) > 0 {
			stanzas = append(stanzas, strings.Join(lines, "\n"))
			lines = lines[:0]
		}
	}
	for _, l := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if l = strings.TrimSpace(l); l == "" {
			flush()
			continue
		}
		lines = append(lines, l)
	}
	flush()
	return stanzas
}
