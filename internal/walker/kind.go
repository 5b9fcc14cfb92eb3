package walker

import (
	"path/filepath"
	"strings"
)

// Kind classifies a discovered file for the build.
type Kind string

const (
	KindMarkdown Kind = "markdown"
	KindHTML     Kind = "html"
	KindStyle    Kind = "style"
	KindScript   Kind = "script"
	KindImage    Kind = "image"
	KindText     Kind = "text"
	KindOther    Kind = "other"
)

var extensionToKind = map[string]Kind{
	".md":       KindMarkdown,
	".markdown": KindMarkdown,
	".html":     KindHTML,
	".htm":      KindHTML,
	".css":      KindStyle,
	".js":       KindScript,
	".mjs":      KindScript,
	".svg":      KindImage,
	".png":      KindImage,
	".jpg":      KindImage,
	".jpeg":     KindImage,
	".gif":      KindImage,
	".webp":     KindImage,
	".ico":      KindImage,
	".txt":      KindText,
	".xml":      KindText,
	".json":     KindText,
	".yml":      KindText,
	".yaml":     KindText,
}

// DetectKind returns the Kind for a file name or path by extension.
func DetectKind(name string) Kind {
	if k, ok := extensionToKind[strings.ToLower(filepath.Ext(name))]; ok {
		return k
	}
	return KindOther
}
