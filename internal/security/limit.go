// Package security provides guards for reading untrusted input.
package security

import (
	"errors"
	"io"
)

// ErrSizeLimit is returned once a LimitedReader has handed out its budget.
var ErrSizeLimit = errors.New("input size limit exceeded")

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// Reading past the limit returns ErrSizeLimit rather than io.EOF.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// Budget spent: the source must be exhausted too.
		var next [1]byte
		n, err := l.R.Read(next[:])
		if n > 0 {
			return 0, ErrSizeLimit
		}
		return 0, err
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}
