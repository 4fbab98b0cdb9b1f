package assetpipe

// FileType is the closed set of asset categories the pipeline distinguishes.
// Only CSS currently has a non-identity transform; the other types exist so
// new transforms (e.g. JS minification) can be added to the strategy table
// without touching the orchestrator.
type FileType int

// Asset categories, determined by case-sensitive extension match.
const (
	TypeOther FileType = iota
	TypeCSS
	TypeJS
	TypeImage
)

func (t FileType) String() string {
	switch t {
	case TypeCSS:
		return "css"
	case TypeJS:
		return "js"
	case TypeImage:
		return "image"
	}
	return "other"
}

// DetectFileType maps a file extension (without the leading dot) to a
// FileType. The match is case-sensitive: "CSS" is not "css". Unrecognized
// extensions, including the empty string, map to TypeOther.
func DetectFileType(ext string) FileType {
	switch ext {
	case "css":
		return TypeCSS
	case "js":
		return TypeJS
	case "webp", "jpg", "jpeg", "png", "avif":
		return TypeImage
	}
	return TypeOther
}
