// Package report renders human-readable run summaries for the assetpipe CLI.
package report

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Summary holds the figures shown after a pipeline run.
type Summary struct {
	SourceDir       string
	OutputDir       string
	FilesDiscovered int
	FilesProcessed  int
	FilesSkipped    int
	CSSMinified     int
	BytesRead       int64
	BytesWritten    int64
	Elapsed         time.Duration
	DryRun          bool
}

// ShouldUseColors determines whether styled output is appropriate.
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// Render writes the run summary to w.
func Render(w io.Writer, s Summary, useColors bool) {
	source := RenderStyle(StyleCyan, s.SourceDir, useColors)
	if s.DryRun {
		fmt.Fprintf(w, "%s %s\n",
			RenderStyle(StyleYellow, "Dry run over", useColors), source)
	} else {
		fmt.Fprintf(w, "%s %s %s %s\n",
			RenderStyle(StyleGreen, "Fingerprinted", useColors), source,
			RenderStyle(StyleGreen, "into", useColors),
			RenderStyle(StyleCyan, s.OutputDir, useColors))
	}

	fmt.Fprintf(w, "  Files processed: %d", s.FilesProcessed)
	if s.FilesSkipped > 0 {
		fmt.Fprintf(w, " %s", RenderStyle(StyleGray,
			fmt.Sprintf("(%d ignored)", s.FilesSkipped), useColors))
	}
	fmt.Fprintln(w)

	if s.CSSMinified > 0 {
		saved := s.BytesRead - s.BytesWritten
		fmt.Fprintf(w, "  CSS minified: %s, %s saved\n",
			pluralizeCount(s.CSSMinified, "file", "files"),
			formatBytes(saved))
	}

	fmt.Fprintf(w, "  Bytes written: %s in %s\n",
		formatBytes(s.BytesWritten), s.Elapsed.Round(time.Millisecond))
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// formatBytes renders a byte count with a binary unit suffix.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit && n > -unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit || v <= -unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
