package stream

import (
	"bytes"
	"errors"
	"io"
)

var DELIMITER = []byte{0x0D, 0x0A, 0x0D, 0x0A}

const maxConsecutiveEmptyReads = 100

// ReadHead accumulates bytes from r, bufSize at a time, until the end of
// the header block is seen, the peer closes, or limit bytes are buffered.
// Whatever was collected is returned; io.EOF is not reported. Any other
// read error is returned along with the partial buffer.
func ReadHead(r io.Reader, bufSize, limit int) ([]byte, error) {
	if bufSize <= 0 || limit <= 0 {
		return nil, errors.New("stream: buffer size and limit must be positive")
	}

	buf := make([]byte, 0, min(bufSize, limit))
	chunk := make([]byte, bufSize)
	empty := 0

	for len(buf) < limit {
		n := min(bufSize, limit-len(buf))
		read, err := r.Read(chunk[:n])
		if read > 0 {
			scanFrom := max(0, len(buf)-len(DELIMITER)+1)
			buf = append(buf, chunk[:read]...)
			if bytes.Contains(buf[scanFrom:], DELIMITER) {
				return buf, nil
			}
			empty = 0
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return buf, nil
			}
			return buf, err
		}

		if read == 0 {
			empty++
			if empty >= maxConsecutiveEmptyReads {
				return buf, io.ErrNoProgress
			}
		}
	}

	return buf, nil
}
