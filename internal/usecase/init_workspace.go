package usecase

import (
	"path"
	"strings"

	"github.com/aalvaropc/aoc/internal/app/template"
	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/ports"
)

// InitWorkspace scaffolds a workspace with an input stub per known day.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
	puzzles     ports.PuzzleCatalog
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer, puzzles ports.PuzzleCatalog) *InitWorkspace {
	return &InitWorkspace{initializer: initializer, puzzles: puzzles}
}

func (uc *InitWorkspace) Execute(root string, force bool) error {
	files, err := inputStubs(domain.DefaultConfig(), uc.puzzles.Days())
	if err != nil {
		return err
	}
	return uc.initializer.Init(domain.WorkspaceSpec{Root: root, InputFiles: files}, force)
}

// inputStubs renders the default input pattern for each day. Paths that
// would escape the workspace are skipped.
func inputStubs(cfg domain.Config, days []int) ([]string, error) {
	out := make([]string, 0, len(days))
	for _, day := range days {
		p, err := template.RenderString(cfg.Paths.InputPattern, cfg.InputVars(day))
		if err != nil {
			return nil, err
		}
		p = path.Clean(strings.TrimSpace(p))
		if p == "." || path.IsAbs(p) || strings.HasPrefix(p, "../") {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
