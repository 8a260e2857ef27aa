// Package ioadapter lets line oriented legacy consoles take part in standard
// io plumbing.
//
// Instead of probing an object at runtime for read or write support, callers
// pick the wrapper they need up front: NewReader for a LineSource, NewWriter
// for a LineSink. A value that can do both is wrapped twice.
package ioadapter

import (
	"bytes"
	"io"

	"github.com/valyala/bytebufferpool"
)

// LineSource yields lines without trailing newlines until it is exhausted.
type LineSource interface {
	NextLine() (string, bool)
}

// LineSink accepts complete lines without trailing newlines.
type LineSink interface {
	Emit(line string)
}

// Reader exposes a LineSource as an io.Reader. Lines are joined with '\n'.
type Reader struct {
	src     LineSource
	pending *bytebufferpool.ByteBuffer
	off     int
	done    bool
}

// NewReader wraps src. Call Close to return the internal buffer to its pool.
func NewReader(src LineSource) *Reader {
	return &Reader{src: src, pending: bytebufferpool.Get()}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.pending == nil {
		return 0, io.ErrClosedPipe
	}
	for r.off >= r.pending.Len() {
		if r.done {
			return 0, io.EOF
		}
		line, ok := r.src.NextLine()
		if !ok {
			r.done = true
			continue
		}
		r.pending.Reset()
		r.off = 0
		_, _ = r.pending.WriteString(line)
		_ = r.pending.WriteByte('\n')
	}
	n := copy(p, r.pending.B[r.off:])
	r.off += n
	return n, nil
}

// Close releases the pooled buffer. Reads after Close fail.
func (r *Reader) Close() error {
	if r.pending != nil {
		bytebufferpool.Put(r.pending)
		r.pending = nil
	}
	return nil
}

// Writer exposes a LineSink as an io.Writer. Bytes are split on '\n' and each
// complete line is emitted; a trailing partial line waits for Flush.
type Writer struct {
	sink    LineSink
	partial []byte
}

// NewWriter wraps sink.
func NewWriter(sink LineSink) *Writer {
	return &Writer{sink: sink}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	rest := p
	for {
		i := bytes.IndexByte(rest, '\n')
		if i < 0 {
			w.partial = append(w.partial, rest...)
			return len(p), nil
		}
		w.partial = append(w.partial, rest[:i]...)
		w.sink.Emit(string(w.partial))
		w.partial = w.partial[:0]
		rest = rest[i+1:]
	}
}

// Flush emits any buffered partial line.
func (w *Writer) Flush() error {
	if len(w.partial) > 0 {
		w.sink.Emit(string(w.partial))
		w.partial = w.partial[:0]
	}
	return nil
}

// Copy streams src into sink through the adapters and flushes the last line.
func Copy(sink LineSink, src LineSource) (int64, error) {
	r := NewReader(src)
	defer r.Close()

	w := NewWriter(sink)
	n, err := io.Copy(w, r)
	if err != nil {
		return n, err
	}
	return n, w.Flush()
}

// LegacyConsole is an in-memory line console implementing both LineSource and
// LineSink.
type LegacyConsole struct {
	lines []string
}

// NewLegacyConsole returns a console preloaded with lines to read.
func NewLegacyConsole(lines ...string) *LegacyConsole {
	return &LegacyConsole{lines: append([]string(nil), lines...)}
}

// NextLine pops the next line.
func (c *LegacyConsole) NextLine() (string, bool) {
	if len(c.lines) == 0 {
		return "", false
	}
	line := c.lines[0]
	c.lines = c.lines[1:]
	return line, true
}

// Emit appends line.
func (c *LegacyConsole) Emit(line string) {
	c.lines = append(c.lines, line)
}

// Lines returns a copy of the lines currently held.
func (c *LegacyConsole) Lines() []string {
	return append([]string(nil), c.lines...)
}
