package lisp

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	lerr := Errorf("test error message")
	assert.Equal(t, "test error message", lerr.Error())

	lerr = berrf("add", "test error message")
	assert.Equal(t, "add: test error message", lerr.Error())

	lerr = invalidTypes("add", Int(1), List())
	assert.Equal(t, "add: invalid types: integer, list", lerr.Error())
}

func TestAsError(t *testing.T) {
	assert.Nil(t, AsError(nil))

	testerr := errors.New("test error message")
	lerr := AsError(testerr)
	assert.Equal(t, testerr.Error(), lerr.Error())

	orig := berrf("nth", "index must be non-negative")
	wrapped := fmt.Errorf("wrapped: %w", orig)
	assert.Same(t, orig, AsError(wrapped))
}

func TestTrace(t *testing.T) {
	var err error = berrf("div", "boom")
	err = addTrace(err, "inner")
	err = addTrace(err, "outer")
	lerr := AsError(err)
	require.NotNil(t, lerr)
	assert.Equal(t, []string{"inner", "outer"}, lerr.Trace)

	var buf bytes.Buffer
	_, werr := lerr.DebugPrint(&buf)
	require.NoError(t, werr)
	expect := "Error: div: boom\n" +
		"    ...at 'inner'\n" +
		"    ...at 'outer'\n"
	assert.Equal(t, expect, buf.String())
}
