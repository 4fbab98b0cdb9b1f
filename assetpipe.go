// Package assetpipe fingerprints static web assets for cache-busting.
//
// Given a directory tree of files, assetpipe computes a BLAKE3 content hash
// for each file, renames the file to a hash-derived name, minifies CSS before
// hashing, writes the result to an output tree, and emits a manifest mapping
// each original logical path to its new hashed path so downstream tooling
// (templates, servers) can resolve asset URLs.
//
// # Library usage
//
//	config := assetpipe.Config{
//		SourceDir: "web/static",
//		OutputDir: "dist/static",
//	}
//	result, err := assetpipe.Process(config)
//
// A successful Process call guarantees that every discovered file was
// processed and that manifest.json was written to the output root. Any other
// outcome is total failure: the run aborts on the first error and no manifest
// is produced. Files already written before the failure are left in place.
//
// # Content addressing
//
// Output filenames are derived solely from the final (post-transform) bytes:
// identical content always yields an identical filename, regardless of the
// original name, location, or run. A name "collision" can therefore only
// occur between byte-identical files, making silent overwrites safe.
//
// # CLI tool
//
// assetpipe also ships a CLI. Install with:
//
//	go install github.com/yacobolo/assetpipe/cmd/assetpipe@latest
package assetpipe
