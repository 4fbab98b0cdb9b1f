package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, Summary{
		SourceDir:       "web/static",
		OutputDir:       "dist/static",
		FilesDiscovered: 4,
		FilesProcessed:  3,
		FilesSkipped:    1,
		CSSMinified:     2,
		BytesRead:       4096,
		BytesWritten:    3072,
		Elapsed:         42 * time.Millisecond,
	}, false)

	out := buf.String()
	assert.Contains(t, out, "Fingerprinted web/static into dist/static")
	assert.Contains(t, out, "Files processed: 3")
	assert.Contains(t, out, "(1 ignored)")
	assert.Contains(t, out, "CSS minified: 2 files")
	assert.Contains(t, out, "1.0 KiB saved")
}

func TestRenderDryRun(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, Summary{SourceDir: "web/static", DryRun: true}, false)

	assert.Contains(t, buf.String(), "Dry run over web/static")
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{n: 0, want: "0 B"},
		{n: 512, want: "512 B"},
		{n: 1024, want: "1.0 KiB"},
		{n: 1536, want: "1.5 KiB"},
		{n: 1048576, want: "1.0 MiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatBytes(tt.n))
	}
}

func TestRenderStyleDisabled(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleCyan, "plain", false))
}
