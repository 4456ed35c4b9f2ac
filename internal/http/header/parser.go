package header

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

var (
	ErrNoCRLF             = errors.New("invalid request: no CRLF found in start line")
	ErrMalformedStartLine = errors.New("invalid start line")
)

var crlf = []byte("\r\n")

func parseRequestLine(headerData []byte) (RequestHeader, error) {
	header := &requestHeader{}

	lineEnd := bytes.Index(headerData, crlf)
	if lineEnd == -1 {
		return nil, ErrNoCRLF
	}

	startLine, err := decodeLatin1(headerData[:lineEnd])
	if err != nil {
		return nil, err
	}
	header.method, header.path, header.version, err = parseStartLine(startLine)
	if err != nil {
		return nil, err
	}

	return header, nil
}

// decodeLatin1 maps every byte to exactly one character, so it cannot
// fail on arbitrary input.
func decodeLatin1(b []byte) (string, error) {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode start line: %w", err)
	}
	return string(decoded), nil
}

func parseStartLine(startLine string) (method, path, version string, err error) {
	tokens := strings.FieldsFunc(startLine, isSpace)
	switch len(tokens) {
	case 0:
		return "", "", "", fmt.Errorf("%w: empty", ErrMalformedStartLine)
	case 1:
		return "", "", "", fmt.Errorf("%w: missing path", ErrMalformedStartLine)
	case 2:
		return "", "", "", fmt.Errorf("%w: missing version", ErrMalformedStartLine)
	}

	return tokens[0], tokens[1], strings.Join(tokens[2:], " "), nil
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', '\r', '\n':
		return true
	}
	return false
}

func finalize(startLine []byte, fields []field) []byte {
	size := len(startLine) + 2
	for _, f := range fields {
		size += len(f.key) + 2 + len(f.value) + 2
	}
	size += 2

	buf := make([]byte, 0, size)
	buf = append(buf, startLine...)
	buf = append(buf, '\r', '\n')

	for _, f := range fields {
		buf = append(buf, f.key...)
		buf = append(buf, ':', ' ')
		buf = append(buf, f.value...)
		buf = append(buf, '\r', '\n')
	}

	buf = append(buf, '\r', '\n')
	return buf
}
