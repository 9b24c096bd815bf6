package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/ports"
)

// ConfigFileName marks the root of an aoc workspace.
const ConfigFileName = "aoc.yaml"

// Finder walks up from a directory (or an input file) to the nearest
// directory holding the config file.
type Finder struct {
	ConfigFile string
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFileName}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	dir, err := searchStart(startDir)
	if err != nil {
		return "", err
	}

	for cur := dir; ; {
		if isFile(filepath.Join(cur, f.ConfigFile)) {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: dir,
				Err:  fmt.Errorf("no %s here or in any parent: %w", f.ConfigFile, domain.ErrNotFound),
			}
		}
		cur = parent
	}
}

// searchStart makes startDir absolute; a file path starts at its directory.
func searchStart(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("start directory is empty: %w", domain.ErrInvalidConfig),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Path: startDir,
			Err:  err,
		}
	}
	if isFile(abs) {
		abs = filepath.Dir(abs)
	}
	return filepath.Clean(abs), nil
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
