package assetpipe

import (
	"encoding/hex"
	"path"

	"github.com/zeebo/blake3"
)

// HashName derives a content-addressed filename from final byte content and
// an extension (without the leading dot, "" for none). The name is the
// lowercase hex encoding of the BLAKE3-256 digest of contents, with the
// extension appended when present:
//
//	HashName([]byte("Hello, world!"), "txt") // "ede5c0b1...2e8a.txt"
//	HashName(data, "")                       // bare digest, no suffix
//
// The function is deterministic and total: identical content always yields
// an identical name, across runs and machines. This is the content-addressing
// guarantee the manifest depends on.
func HashName(contents []byte, ext string) string {
	sum := blake3.Sum256(contents)
	digest := hex.EncodeToString(sum[:])
	if ext == "" {
		return digest
	}
	return digest + "." + ext
}

// Rename replaces the asset's filename with its content-addressed name,
// keeping the parent directory segment and the original extension. Must be
// called after any transform so the name reflects the final bytes.
func (a *Asset) Rename() error {
	base := path.Base(a.RelPath)
	if base == "." || base == "/" || base == "" {
		return pipelineErr(KindInvalidPath, a.RelPath, errNoFilename)
	}
	name := HashName(a.Contents, a.Ext())
	if dir := path.Dir(a.RelPath); dir != "." {
		a.RelPath = dir + "/" + name
	} else {
		a.RelPath = name
	}
	return nil
}
