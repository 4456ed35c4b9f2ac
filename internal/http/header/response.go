package header

import "strconv"

const Proto = "HTTP/1.1"

var statusText = map[int]string{
	200: "OK",
	400: "Bad Request",
	404: "Not Found",
	405: "Method Not Allowed",
	500: "Internal Server Error",
}

// StatusText returns the reason phrase for code. Codes outside the table
// fall back to "OK".
func StatusText(code int) string {
	if text, ok := statusText[code]; ok {
		return text
	}
	return "OK"
}

func NewResponse(status int) ResponseHeader {
	startLine := make([]byte, 0, 32)
	startLine = append(startLine, Proto...)
	startLine = append(startLine, ' ')
	startLine = strconv.AppendInt(startLine, int64(status), 10)
	startLine = append(startLine, ' ')
	startLine = append(startLine, StatusText(status)...)

	return &responseHeader{
		startLine: startLine,
		fields:    make([]field, 0, 8),
	}
}

func (resp *responseHeader) Set(key string, value string) {
	for i := range resp.fields {
		if resp.fields[i].key == key {
			resp.fields[i].value = value
			return
		}
	}
	resp.fields = append(resp.fields, field{key: key, value: value})
}

func (resp *responseHeader) Finalize() []byte {
	return finalize(resp.startLine, resp.fields)
}
