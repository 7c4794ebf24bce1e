package corpus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rdpoor/mu-json/token"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	want := Generate(25)
	compressed, err := Compressed(25)
	require.NoError(t, err)
	require.NotEmpty(t, compressed)
	require.Less(t, len(compressed), len(want), "fixture should actually compress")

	dst := make([]byte, len(want))
	n, err := Decompress(dst, compressed)
	require.NoError(t, err)
	require.Equal(t, want, string(dst[:n]))
}

func TestDecompressRejectsUndersizedBuffer(t *testing.T) {
	compressed, err := Compressed(50)
	require.NoError(t, err)

	dst := make([]byte, 4)
	_, err = Decompress(dst, compressed)
	require.Error(t, err)
}

func TestDecompressedDocumentTokenizes(t *testing.T) {
	compressed, err := Compressed(10)
	require.NoError(t, err)

	doc := Generate(10)
	dst := make([]byte, len(doc))
	n, err := Decompress(dst, compressed)
	require.NoError(t, err)

	tokens := make([]token.Token, 256)
	count, err := token.Parse(dst[:n], tokens)
	require.NoError(t, err)
	require.Equal(t, token.KindArray, tokens[0].Kind())
	require.Greater(t, count, 10)
}
