package assetpipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformCSS(t *testing.T) {
	asset := &Asset{
		RelPath:  "css/main.css",
		Type:     TypeCSS,
		Contents: []byte("body { margin: 0; }"),
	}

	transformed, err := asset.Transform()
	require.NoError(t, err)
	assert.True(t, transformed)
	assert.Equal(t, "body{margin:0}", string(asset.Contents))
}

func TestTransformCSSStripsComments(t *testing.T) {
	asset := &Asset{
		RelPath:  "a.css",
		Type:     TypeCSS,
		Contents: []byte("/* reset */\nbody {\n\tmargin: 0;\n\tpadding: 0;\n}\n"),
	}

	transformed, err := asset.Transform()
	require.NoError(t, err)
	assert.True(t, transformed)
	assert.Equal(t, "body{margin:0;padding:0}", string(asset.Contents))
}

func TestTransformCSSIdempotent(t *testing.T) {
	once := &Asset{RelPath: "a.css", Type: TypeCSS, Contents: []byte("body { margin: 0; }")}
	_, err := once.Transform()
	require.NoError(t, err)

	twice := &Asset{RelPath: "a.css", Type: TypeCSS, Contents: append([]byte(nil), once.Contents...)}
	_, err = twice.Transform()
	require.NoError(t, err)

	assert.Equal(t, once.Contents, twice.Contents)
}

func TestTransformIdentityForOtherTypes(t *testing.T) {
	tests := []struct {
		name string
		typ  FileType
	}{
		{name: "js", typ: TypeJS},
		{name: "image", typ: TypeImage},
		{name: "other", typ: TypeOther},
	}

	contents := []byte{0x89, 'P', 'N', 'G', 0x00, 0xFF}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := &Asset{RelPath: "x", Type: tt.typ, Contents: append([]byte(nil), contents...)}
			transformed, err := asset.Transform()
			require.NoError(t, err)
			assert.False(t, transformed)
			assert.Equal(t, contents, asset.Contents)
		})
	}
}

func TestTransformCSSInvalidText(t *testing.T) {
	asset := &Asset{
		RelPath:  "bad.css",
		Type:     TypeCSS,
		Contents: []byte{0xFF, 0xFE, 0xFD},
	}

	_, err := asset.Transform()
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindParsing, perr.Kind)
	assert.Equal(t, "bad.css", perr.Path)
}
