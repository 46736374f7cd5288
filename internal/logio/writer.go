package logio

import (
	"bytes"
	"sync"
)

// Writer implements an io.Writer around a formatted logging function, logging
// each complete line written, optionally under a fixed Prefix.
type Writer struct {
	Logf   func(mess string, args ...interface{})
	Prefix string

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write writes the given bytes into an internal buffer, then flushes any
// completed lines through Logf. This is all done while holding a lock, so that
// writing is safe from multiple goroutines.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.flushLines(false)
	return len(p), nil
}

// Sync logs any partial line remaining in the internal buffer.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.flushLines(true)
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error {
	return lw.Sync()
}

func (lw *Writer) flushLines(all bool) {
	for lw.buf.Len() > 0 {
		if i := bytes.IndexByte(lw.buf.Bytes(), '\n'); i >= 0 {
			lw.logLine(lw.buf.Next(i))
			lw.buf.Next(1)
		} else if all {
			lw.logLine(lw.buf.Next(lw.buf.Len()))
		} else {
			break
		}
	}
}

func (lw *Writer) logLine(line []byte) {
	if lw.Prefix != "" {
		lw.Logf("%s%s", lw.Prefix, line)
	} else {
		lw.Logf("%s", line)
	}
}
