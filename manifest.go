package assetpipe

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

// ManifestFilename is the name of the manifest written at the output root.
const ManifestFilename = "manifest.json"

// Manifest maps each original root-relative path (forward-slash normalized)
// to its hashed path relative to the output root. One entry per input file;
// built incrementally during a run and immutable once the run completes.
// Runs never merge: each starts from an empty manifest.
type Manifest map[string]string

// Add records one original → hashed mapping.
func (m Manifest) Add(original, hashed string) {
	m[original] = hashed
}

// Encode writes the manifest as pretty-printed JSON. Keys are sorted, so the
// serialized form is reproducible across runs on identical input.
func (m Manifest) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(m)
}

// writeManifest persists the manifest to ManifestFilename at the output
// root. Called exactly once, at the end of a fully successful run.
func writeManifest(outputRoot string, m Manifest) error {
	dest := filepath.Join(outputRoot, ManifestFilename)
	f, err := os.Create(dest)
	if err != nil {
		return pipelineErr(KindIO, ManifestFilename, err)
	}
	if err := m.Encode(f); err != nil {
		f.Close()
		return pipelineErr(KindIO, ManifestFilename, err)
	}
	if err := f.Close(); err != nil {
		return pipelineErr(KindIO, ManifestFilename, err)
	}
	return nil
}
