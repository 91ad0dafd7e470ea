package option_test

import (
	"testing"

	"github.com/npillmayer/skald/core/option"
	"github.com/stretchr/testify/assert"
)

func TestOptionSomeNone(t *testing.T) {
	x := option.Some(42)
	assert.False(t, x.IsNone())
	v, err := x.Unwrap()
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
	//
	y := option.None[int]()
	assert.True(t, y.IsNone())
	_, err = y.Unwrap()
	assert.ErrorIs(t, err, option.ErrCannotUnwrapNone)
	assert.Equal(t, 7, y.UnwrapOr(7))
	assert.Equal(t, "None", y.String())
	assert.Equal(t, "42", x.String())
}

func TestOptionZeroValueIsNone(t *testing.T) {
	var b option.T[bool]
	assert.True(t, b.IsNone())
	assert.True(t, b.Equals(option.None[bool]()))
	assert.False(t, b.Equals(option.Some(false)), "None must differ from Some(false)")
}

func TestOptionMatches(t *testing.T) {
	voiced := option.Some(true)
	assert.True(t, voiced.Matches(true))
	assert.False(t, voiced.Matches(false))
	wildcard := option.None[bool]()
	assert.True(t, wildcard.Matches(true))
	assert.True(t, wildcard.Matches(false))
}
