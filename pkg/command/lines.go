package command

import (
	"bufio"
	"io"
)

// LineSource yields the lines of a reader lazily, one at a time.
type LineSource struct {
	scanner *bufio.Scanner
	lineNo  int
}

func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{scanner: bufio.NewScanner(r)}
}

// Next returns the next line. It returns false once the reader is exhausted
// or failed; check Err afterwards.
func (s *LineSource) Next() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	s.lineNo++
	return s.scanner.Text(), true
}

// LineNo is the 1-based number of the last line returned by Next.
func (s *LineSource) LineNo() int {
	return s.lineNo
}

func (s *LineSource) Err() error {
	return s.scanner.Err()
}
