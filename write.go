package assetpipe

import (
	"os"
	"path"
	"path/filepath"
)

// Layout controls how output paths are derived from asset paths.
type Layout int

const (
	// LayoutPreserve recreates the asset's relative subdirectory under the
	// output root. This is the default and the general case.
	LayoutPreserve Layout = iota
	// LayoutFlatten writes directly under the output root, discarding the
	// original subdirectory. Flatten is preserve at depth zero.
	LayoutFlatten
)

func (l Layout) String() string {
	if l == LayoutFlatten {
		return "flatten"
	}
	return "preserve"
}

// ParseLayout maps a config string to a Layout. Unknown values default to
// preserve.
func ParseLayout(s string) Layout {
	if s == "flatten" {
		return LayoutFlatten
	}
	return LayoutPreserve
}

// outputPath returns the asset's path relative to the output root under the
// given layout.
func outputPath(relPath string, layout Layout) string {
	if layout == LayoutFlatten {
		return path.Base(relPath)
	}
	return relPath
}

// writeAsset persists the (renamed) asset under outputRoot. Parent
// directories are created idempotently. An existing file at the destination
// is silently replaced: destination names are content-derived, so a
// collision means the bytes are identical and the overwrite is a no-op in
// effect.
func writeAsset(outputRoot string, a *Asset, layout Layout) error {
	rel := outputPath(a.RelPath, layout)
	dest := filepath.Join(outputRoot, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return pipelineErr(KindIO, rel, err)
	}
	if err := os.WriteFile(dest, a.Contents, 0o644); err != nil {
		return pipelineErr(KindIO, rel, err)
	}
	return nil
}
