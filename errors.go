package assetpipe

import (
	"errors"
	"fmt"
)

// ErrorKind classifies pipeline failures.
type ErrorKind int

// Failure categories. Every error returned by Process is an *Error carrying
// exactly one of these kinds plus the relative path of the offending file.
const (
	// KindTraversal: the input root is missing, not a directory, or a
	// directory read failed mid-walk.
	KindTraversal ErrorKind = iota
	// KindIO: a file read, file write, or directory creation failed.
	KindIO
	// KindParsing: content that requires structural parsing (CSS) is
	// malformed, including byte sequences that are not valid text.
	KindParsing
	// KindMinification: the minifier failed on structurally valid input.
	KindMinification
	// KindInvalidPath: a path is missing a filename segment.
	KindInvalidPath
)

func (k ErrorKind) String() string {
	switch k {
	case KindTraversal:
		return "traversal"
	case KindIO:
		return "io"
	case KindParsing:
		return "parsing"
	case KindMinification:
		return "minification"
	case KindInvalidPath:
		return "invalid path"
	}
	return "unknown"
}

// Error is the terminal error type of a pipeline run. It identifies both the
// failure kind and the offending path (relative to the input root, or the
// input/output root itself for traversal and manifest failures).
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s error", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %s error: %v", e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func pipelineErr(kind ErrorKind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

var errNoFilename = errors.New("path has no filename segment")
