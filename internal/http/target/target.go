// Package target maps a request target onto a path relative to the
// serving root.
package target

import (
	"errors"
	"path"
	"strings"
)

var ErrTraversal = errors.New("target escapes serving root")

const parentDir = ".."

// Resolve turns a raw request target into a slash-separated path relative
// to the serving root. "/" maps to defaultDocument. The check for a leading
// ".." runs on the cleaned path, so segments like "a/../../x" are caught.
func Resolve(target, defaultDocument string) (string, error) {
	if target == "/" {
		target = "/" + defaultDocument
	}

	cleaned := path.Clean(strings.TrimLeft(target, "/"))

	first, _, _ := strings.Cut(cleaned, "/")
	if first == parentDir {
		return "", ErrTraversal
	}

	return cleaned, nil
}
