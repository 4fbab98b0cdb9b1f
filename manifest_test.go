package assetpipe

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestEncode(t *testing.T) {
	m := make(Manifest)
	m.Add("css/main.css", "css/057b37e6.css")
	m.Add("app.js", "1a2b3c4d.js")

	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf))

	// Pretty-printed with sorted keys for reproducible diffs.
	assert.Equal(t, "{\n  \"app.js\": \"1a2b3c4d.js\",\n  \"css/main.css\": \"css/057b37e6.css\"\n}\n",
		buf.String())
}

func TestManifestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, make(Manifest).Encode(&buf))
	assert.Equal(t, "{}\n", buf.String())
}

func TestWriteManifest(t *testing.T) {
	out := t.TempDir()
	m := Manifest{"example.txt": "abc123.txt"}

	require.NoError(t, writeManifest(out, m))

	raw, err := os.ReadFile(filepath.Join(out, ManifestFilename))
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, map[string]string{"example.txt": "abc123.txt"}, decoded)
}
