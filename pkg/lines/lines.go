package lines

import (
	"bufio"
	"bytes"
	"io"
)

// MaxLineLength is the longest line a Scanner accepts before failing with bufio.ErrTooLong.
const MaxLineLength = 64 << 20

const initialBufferSize = 64 << 10

// ScanLines is a bufio.SplitFunc that splits on "\n", "\r\n" and a lone "\r".
// The terminator is stripped and a terminator at EOF does not yield a trailing empty line.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}

		// "\r" may be the first half of "\r\n"; look at the next byte before deciding
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Scanner yields the lines of a reader together with their 1-based numbers.
type Scanner struct {
	s *bufio.Scanner
	n int
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, initialBufferSize), MaxLineLength)
	s.Split(ScanLines)
	return &Scanner{s: s}
}

// Scan advances to the next line. It returns false at EOF or on error.
func (s *Scanner) Scan() bool {
	if !s.s.Scan() {
		return false
	}
	s.n++
	return true
}

// Text returns the current line without its terminator.
func (s *Scanner) Text() string {
	return s.s.Text()
}

// Number returns the 1-based number of the current line.
func (s *Scanner) Number() int {
	return s.n
}

// Err returns the first non-EOF error encountered.
func (s *Scanner) Err() error {
	return s.s.Err()
}

// Count reads r to EOF and returns the number of lines in it.
func Count(r io.Reader) (int, error) {
	s := NewScanner(r)
	for s.Scan() {
	}
	return s.Number(), s.Err()
}
