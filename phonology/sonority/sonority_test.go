package sonority

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOldNorseRanks(t *testing.T) {
	r, ok := OldNorse.Rank("á")
	assert.True(t, ok)
	assert.Equal(t, 0, r)
	r, _ = OldNorse.Rank("j")
	assert.Equal(t, 1, r)
	r, _ = OldNorse.Rank("l")
	assert.Equal(t, OldNorse.Depth()-1, r)
	_, ok = OldNorse.Rank("w")
	assert.False(t, ok)
	assert.True(t, OldNorse.IsNucleus("ǫ́"))
	assert.False(t, OldNorse.IsNucleus("þ"))
}

func TestFromStrings(t *testing.T) {
	h := FromStrings("test", "ae", "r", "st")
	assert.Equal(t, 3, h.Depth())
	assert.Equal(t, []string{"s", "t"}, h.Tier(2))
	assert.Nil(t, h.Tier(3))
	assert.Equal(t, "test 0:ae 1:r 2:st", h.String())
	r, _ := WestGermanic.Rank("c")
	assert.Equal(t, WestGermanic.Depth()-1, r)
}
