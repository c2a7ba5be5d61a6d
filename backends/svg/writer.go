package svg

import (
	"errors"
	"io"
)

var errStreaming = errors.New("svg: document was streamed to a writer")

// errWriter remembers the first write error and drops later writes.
// svgo formats straight into its writer and ignores errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
