package source

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// Local implements Opener for the local filesystem. Gzip-compressed files are
// detected by their magic bytes and decompressed transparently.
type Local struct {
	root string
}

// NewLocal creates a Local source rooted at the given directory.
// An empty root resolves names as given.
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Open opens the named file for reading.
func (l *Local) Open(_ context.Context, name string) (io.ReadCloser, error) {
	path := name
	if l.root != "" {
		path = filepath.Join(l.root, name)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return &stackedReadCloser{Reader: gr, closers: []io.Closer{gr, f}}, nil
	}

	return &stackedReadCloser{Reader: br, closers: []io.Closer{f}}, nil
}

// stackedReadCloser reads from Reader and closes all closers in order.
type stackedReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedReadCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
