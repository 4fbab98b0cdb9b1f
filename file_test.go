package assetpipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAsset(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"css/main.css": "body { margin: 0; }"})

	asset, err := LoadAsset(root, "css/main.css")
	require.NoError(t, err)
	assert.Equal(t, "css/main.css", asset.RelPath)
	assert.Equal(t, TypeCSS, asset.Type)
	assert.Equal(t, "body { margin: 0; }", string(asset.Contents))
	assert.Equal(t, "css", asset.Ext())
}

func TestLoadAssetNoExtensionIsOther(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"LICENSE": "MIT"})

	asset, err := LoadAsset(root, "LICENSE")
	require.NoError(t, err)
	assert.Equal(t, TypeOther, asset.Type)
	assert.Empty(t, asset.Ext())
}

func TestLoadAssetMissingFile(t *testing.T) {
	_, err := LoadAsset(t.TempDir(), "vanished.txt")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindIO, perr.Kind)
	assert.Equal(t, "vanished.txt", perr.Path)
}

func TestErrorMessageNamesKindAndPath(t *testing.T) {
	_, err := LoadAsset(t.TempDir(), "vanished.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vanished.txt")
	assert.Contains(t, err.Error(), "io error")
}
