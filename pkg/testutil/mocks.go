package testutil

import (
	"io"
	"io/fs"
	"strings"
	"time"
)

// MockFileInfo is a test double for fs.FileInfo.
type MockFileInfo struct {
	NameValue string
	SizeValue int64
	ModeValue fs.FileMode
}

func (m *MockFileInfo) Name() string       { return m.NameValue }
func (m *MockFileInfo) Size() int64        { return m.SizeValue }
func (m *MockFileInfo) Mode() fs.FileMode  { return m.ModeValue }
func (m *MockFileInfo) IsDir() bool        { return m.ModeValue.IsDir() }
func (m *MockFileInfo) Sys() any           { return nil }
func (m *MockFileInfo) ModTime() time.Time { return time.Time{} }

// TrackingReadCloser wraps a reader and records how many times Close was called.
type TrackingReadCloser struct {
	io.Reader
	Closed int
}

func (t *TrackingReadCloser) Close() error {
	t.Closed++
	return nil
}

// NewTrackingReadCloser wraps r.
func NewTrackingReadCloser(r io.Reader) *TrackingReadCloser {
	return &TrackingReadCloser{Reader: r}
}

// CountLinesContaining returns how many newline-separated lines of s contain substr.
func CountLinesContaining(s, substr string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.Contains(line, substr) {
			n++
		}
	}
	return n
}
