package ui

import "io"

// PaintedWriter colours everything written through it with one palette function.
type PaintedWriter struct {
	w     io.Writer
	paint func(a ...interface{}) string
}

// NewPaintedWriter wraps w so each Write is passed through paint.
func NewPaintedWriter(w io.Writer, paint func(a ...interface{}) string) *PaintedWriter {
	return &PaintedWriter{w: w, paint: paint}
}

// Write colours p as one unit, keeping a trailing newline outside the escape codes.
func (p *PaintedWriter) Write(b []byte) (int, error) {
	s := string(b)
	nl := ""
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s, nl = s[:n-1], "\n"
	}
	if _, err := io.WriteString(p.w, p.paint(s)+nl); err != nil {
		return 0, err
	}
	return len(b), nil
}
