package iojson

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]any{"count": 2, "ids": []string{"1", "2"}})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"count\": 2,\n  \"ids\": [\n    \"1\",\n    \"2\"\n  ]\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalError(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]any{"bad": make(chan int)})
	require.ErrorContains(t, err, "encode output")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), `"message": "encode output"`)
	assert.Contains(t, errOut.String(), "unsupported type")
}

func TestEncode(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, Encode(&out, []string{"3"}))
	assert.Equal(t, "[\n  \"3\"\n]\n", out.String())
}

func TestFileReader_Stdin(t *testing.T) {
	fr := FileReader[[]string]{Stdin: strings.NewReader(`["10", "20"]`)}

	assert.True(t, fr.Available())

	ids, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "20"}, ids)
}

func TestFileReader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.json")
	require.NoError(t, os.WriteFile(path, []byte(`["7"]`), 0o644))

	fr := FileReader[[]string]{fileFlagValue: path, Stdin: strings.NewReader("ignored")}

	ids, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, ids)
}

func TestFileReader_BadJSON(t *testing.T) {
	fr := FileReader[[]string]{Stdin: strings.NewReader(`{"not":"a list"}`)}

	_, err := fr.Read()
	require.ErrorContains(t, err, "decode JSON")
}
