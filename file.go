package assetpipe

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Asset is one unit of work flowing through the pipeline: a root-relative
// path (forward-slash normalized), the type inferred from its extension at
// load time, and its byte content. The path changes identity exactly once
// (when renamed to the hashed name) and the content changes at most once
// (when transformed) before hashing.
type Asset struct {
	// RelPath is the path relative to the input root, forward-slash
	// separated. After Rename it carries the hashed filename with the
	// parent directory segment preserved.
	RelPath string
	// Type is a pure function of the path's extension at load time.
	Type FileType
	// Contents holds the raw bytes, replaced in place by a transform.
	Contents []byte
}

// Ext returns the asset's extension without the leading dot, or "" when the
// filename has none.
func (a *Asset) Ext() string {
	return strings.TrimPrefix(path.Ext(a.RelPath), ".")
}

// LoadAsset reads the file at relPath under root and builds an Asset.
// Files without an extension are classified TypeOther and proceed through
// the pipeline; a missing extension is not an error.
func LoadAsset(root, relPath string) (*Asset, error) {
	if path.Base(relPath) == "." || path.Base(relPath) == "/" {
		return nil, pipelineErr(KindInvalidPath, relPath, errNoFilename)
	}
	// #nosec G304 - paths come from the walker over a trusted root
	contents, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
	if err != nil {
		return nil, pipelineErr(KindIO, relPath, err)
	}
	a := &Asset{
		RelPath:  relPath,
		Contents: contents,
	}
	a.Type = DetectFileType(a.Ext())
	return a, nil
}
