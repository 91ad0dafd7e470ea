package verse

import (
	"strings"

	"github.com/npillmayer/skald/core"
)

// Meter groups the short lines of a stanza into long lines.
type Meter interface {
	Name() string
	LongLines(shortLines []string) ([][]string, error)
}

type fornyrdhislag struct{}
type ljoodhhaattr struct{}
type unclassified struct{}

var (
	// Fornyrdhislag is the 'old story meter' of eight short lines.
	Fornyrdhislag Meter = fornyrdhislag{}
	// Ljoodhhaattr is the 'song meter' of six lines.
	Ljoodhhaattr Meter = ljoodhhaattr{}
	// Unclassified treats every short line as a long line of its own.
	Unclassified Meter = unclassified{}
)

func (fornyrdhislag) Name() string { return "fornyrðislag" }
func (ljoodhhaattr) Name() string  { return "ljóðaháttr" }
func (unclassified) Name() string  { return "unclassified" }

// LongLines pairs consecutive short lines. A trailing odd line is dropped.
func (fornyrdhislag) LongLines(shortLines []string) ([][]string, error) {
	long := make([][]string, 0, len(shortLines)/2)
	for i := 0; i+1 < len(shortLines); i += 2 {
		long = append(long, shortLines[i:i+2:i+2])
	}
	return long, nil
}

// LongLines groups six lines as 2+1+2+1. Lines beyond the sixth are
// ignored.
func (ljoodhhaattr) LongLines(shortLines []string) ([][]string, error) {
	if len(shortLines) < 6 {
		return nil, core.Error(core.EINPUT, "ljóðaháttr needs 6 lines, have %d", len(shortLines))
	}
	return [][]string{
		shortLines[0:2:2],
		shortLines[2:3:3],
		shortLines[3:5:5],
		shortLines[5:6:6],
	}, nil
}

func (unclassified) LongLines(shortLines []string) ([][]string, error) {
	long := make([][]string, len(shortLines))
	for i := range shortLines {
		long[i] = shortLines[i : i+1 : i+1]
	}
	return long, nil
}

// ShortLines splits a text at line breaks, dropping blank lines.
func ShortLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// IsFornyrdhislag is true for texts of exactly 8 non-blank lines.
func IsFornyrdhislag(text string) bool {
	return len(ShortLines(text)) == 8
}

// IsLjoodhhaattr is true for texts of exactly 6 non-blank lines.
func IsLjoodhhaattr(text string) bool {
	return len(ShortLines(text)) == 6
}

// Classify finds the meter of a stanza.
func Classify(text string) Meter {
	switch {
	case IsFornyrdhislag(text):
		return Fornyrdhislag
	case IsLjoodhhaattr(text):
		return Ljoodhhaattr
	}
	return Unclassified
}
