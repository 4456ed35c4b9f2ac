package header

// RequestHeader is a parsed request line. Header lines that follow it
// are not interpreted.
type RequestHeader interface {
	Method() string
	Path() string
	Version() string
}

type requestHeader struct {
	method  string
	path    string
	version string
}

// ResponseHeader is an ordered header block. Keys are emitted exactly as
// set, in insertion order, one value per key.
type ResponseHeader interface {
	Set(key string, value string)
	Finalize() []byte
}

type field struct {
	key   string
	value string
}

type responseHeader struct {
	startLine []byte
	fields    []field
}
