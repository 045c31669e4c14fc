package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRelaxed_FullDialect(t *testing.T) {
	doc := []byte(`{
	// line comment
	name: 'uart', /* block
	comment */
	addressOffset: 0x20, # hash comment
	size: 32,
	"flags": [true, false,],
}`)

	n, err := DecodeRelaxed(doc)
	require.NoError(t, err)

	name, ok := mustGet(t, n, "name").Str()
	require.True(t, ok)
	assert.Equal(t, "uart", name)

	off, ok := mustGet(t, n, "addressOffset").Int()
	require.True(t, ok)
	assert.Equal(t, int64(0x20), off, "hex literal must survive normalization")

	size, ok := mustGet(t, n, "size").Int()
	require.True(t, ok)
	assert.Equal(t, int64(32), size)

	flags := mustGet(t, n, "flags")
	assert.Equal(t, 2, flags.Len(), "trailing comma must not add an element")
}

func TestDecodeRelaxed_StrictInputUnchanged(t *testing.T) {
	doc := []byte(`{"a": [1, 2], "b": "x // not a comment"}`)

	n, err := DecodeRelaxed(doc)
	require.NoError(t, err)

	b, ok := mustGet(t, n, "b").Str()
	require.True(t, ok)
	assert.Equal(t, "x // not a comment", b, "comment markers inside strings must be kept")
}

func TestDecodeRelaxed_TrailingCommaInObject(t *testing.T) {
	n, err := DecodeRelaxed([]byte(`{a: 1, b: 2,}`))
	require.NoError(t, err)
	assert.Equal(t, 2, n.Len())
}

func TestDecodeRelaxed_EscapedQuotes(t *testing.T) {
	n, err := DecodeRelaxed([]byte(`{s: 'it\'s "quoted"'}`))
	require.NoError(t, err)

	s, ok := mustGet(t, n, "s").Str()
	require.True(t, ok)
	assert.Equal(t, `it's "quoted"`, s)
}
