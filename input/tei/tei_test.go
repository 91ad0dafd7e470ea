package tei

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/skald/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const havamal = `<?xml version="1.0" encoding="UTF-8"?>
<TEI xmlns="http://www.tei-c.org/ns/1.0">
  <teiHeader><fileDesc><titleStmt><title>Hávamál</title></titleStmt></fileDesc></teiHeader>
  <text><body>
    <lg type="poem">
      <lg type="stanza" n="76">
        <l>Deyr fé,</l>
        <l>deyja frændr,</l>
        <l>deyr sjalfr it sama;</l>
        <l>en orðstírr</l>
        <l>deyr aldregi,</l>
        <l>hveim er sér <hi>góðan</hi> getr.</l>
      </lg>
      <lg type="stanza" n="77">
        <l>Deyr fé,</l>
        <l>   deyja
           frændr,</l>
        <l></l>
      </lg>
    </lg>
  </body></text>
</TEI>`

func TestStanzas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skald.input")
	defer teardown()
	//
	stanzas, err := Stanzas(strings.NewReader(havamal))
	require.NoError(t, err)
	require.Len(t, stanzas, 2, "the enclosing line group has no lines of its own")
	lines := strings.Split(stanzas[0], "\n")
	assert.Len(t, lines, 6)
	assert.Equal(t, "Deyr fé,", lines[0])
	assert.Equal(t, "hveim er sér góðan getr.", lines[5])
	assert.Equal(t, "Deyr fé,\ndeyja frændr,", stanzas[1])
}

func TestNoLineGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skald.input")
	defer teardown()
	//
	stanzas, err := Stanzas(strings.NewReader(`<TEI><text><body><p>prose</p></body></text></TEI>`))
	require.NoError(t, err)
	assert.Empty(t, stanzas)
}

func TestMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skald.input")
	defer teardown()
	//
	_, err := Stanzas(strings.NewReader(`<TEI><lg><l>Deyr fé</lg>`))
	assert.Equal(t, core.EINPUT, core.Code(err))
}
