package capture

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// DirSource yields frames from a directory of pre-extracted frame images,
// in lexical filename order.
type DirSource struct {
	paths  []string
	next   int
	closed bool
}

func NewDirSource(dir string) (*DirSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading frame directory: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	return &DirSource{paths: paths}, nil
}

func (s *DirSource) Next(ctx context.Context) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}
	if s.closed || s.next >= len(s.paths) {
		return Frame{}, io.EOF
	}

	data, err := os.ReadFile(s.paths[s.next])
	if err != nil {
		return Frame{}, fmt.Errorf("reading frame: %w", err)
	}

	frame := Frame{Index: s.next, Data: data}
	s.next++
	return frame, nil
}

func (s *DirSource) Close() error {
	s.closed = true
	return nil
}
