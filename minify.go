package assetpipe

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/parse/v2"
)

// transformFunc rewrites an asset's contents in place before hashing.
type transformFunc func(a *Asset) error

// transforms is the per-type strategy table. Types without an entry pass
// through unchanged. New transforms (e.g. JS minification) register here;
// the orchestrator never needs to change.
var transforms = map[FileType]transformFunc{
	TypeCSS: minifyCSS,
}

var cssMinifier = minify.New()

// Transform applies the type-specific transform for the asset, if any.
// It reports whether the contents were modified.
func (a *Asset) Transform() (bool, error) {
	fn, ok := transforms[a.Type]
	if !ok {
		return false, nil
	}
	if err := fn(a); err != nil {
		return false, err
	}
	return true, nil
}

// minifyCSS parses the contents as a stylesheet and serializes it back as
// compact text. The three failure modes stay distinct: contents that are not
// valid UTF-8 text and syntax errors surface as KindParsing, while a
// minifier failure on syntactically valid input surfaces as
// KindMinification.
func minifyCSS(a *Asset) error {
	if !utf8.Valid(a.Contents) {
		return pipelineErr(KindParsing, a.RelPath, errors.New("contents are not valid UTF-8 text"))
	}
	var buf bytes.Buffer
	if err := css.Minify(cssMinifier, &buf, bytes.NewReader(a.Contents), nil); err != nil {
		var perr *parse.Error
		if errors.As(err, &perr) {
			return pipelineErr(KindParsing, a.RelPath, err)
		}
		return pipelineErr(KindMinification, a.RelPath, err)
	}
	a.Contents = buf.Bytes()
	return nil
}
