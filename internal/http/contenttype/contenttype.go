package contenttype

import (
	"path"
	"strings"
)

const Default = "application/octet-stream"

var byExtension = map[string]string{
	"html": "text/html; charset=utf-8",
	"htm":  "text/html; charset=utf-8",
	"txt":  "text/plain; charset=utf-8",
	"css":  "text/css; charset=utf-8",
	"js":   "application/javascript",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
}

// ByPath infers a MIME type from the extension of p. Unknown or missing
// extensions yield Default.
func ByPath(p string) string {
	ext := path.Ext(strings.ToLower(p))
	if ext == "" {
		return Default
	}
	if typ, ok := byExtension[ext[1:]]; ok {
		return typ
	}
	return Default
}
