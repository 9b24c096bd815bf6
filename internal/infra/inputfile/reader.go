package inputfile

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/ports"
)

type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

var _ ports.InputSource = (*Reader)(nil)

// ReadLines loads the whole file and returns its lines without line
// terminators. A final newline does not produce a trailing empty line.
func (r *Reader) ReadLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "inputfile.read",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return splitLines(string(b)), nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
