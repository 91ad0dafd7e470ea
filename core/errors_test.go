package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(ELOOKUP, "no phonetic mapping for %q", "x")
	assert.Equal(t, ELOOKUP, Code(err))
	assert.Equal(t, `no phonetic mapping for "x"`, UserMessage(err))
	//
	wrapped := fmt.Errorf("transcribing word: %w", err)
	assert.Equal(t, ELOOKUP, Code(wrapped), "code must survive wrapping")
}

func TestErrorsWithoutCode(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	plain := errors.New("plain")
	assert.Equal(t, EINTERNAL, Code(plain))
	assert.Equal(t, "internal error", UserMessage(plain))
}

func TestWrapError(t *testing.T) {
	cause := errors.New("unexpected token")
	err := WrapError(cause, EINVALID, "cannot parse rule %d", 3)
	assert.Equal(t, EINVALID, Code(err))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "[123] cannot parse rule 3: unexpected token", err.Error())
	//
	err = ErrorWithCode(nil, EINPUT)
	assert.Equal(t, EINPUT, Code(err))
	assert.Equal(t, "[124] unusable input", err.Error())
	err = Error(ELOOKUP, "no phonetic mapping for %q", "w")
	assert.Equal(t, `[122] no phonetic mapping for "w": no entry for symbol`, err.Error())
	assert.Equal(t, "undefined error", UserMessage(ErrorWithCode(nil, 999)))
}
