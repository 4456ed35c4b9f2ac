package header

// NewRequest parses the head of a request. The start line must end in
// CRLF and carry at least a method, a path and a version.
func NewRequest(data []byte) (RequestHeader, error) {
	return parseRequestLine(data)
}

func (req *requestHeader) Method() string {
	return req.method
}

func (req *requestHeader) Path() string {
	return req.path
}

func (req *requestHeader) Version() string {
	return req.version
}
