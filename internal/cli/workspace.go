package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/aoc/internal/app/template"
	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/infra/runstore"
	"github.com/aalvaropc/aoc/internal/infra/workspacefinder"
	"github.com/aalvaropc/aoc/internal/ports"
)

const defaultInput = "input.txt"

type workspaceCtx struct {
	root  string
	cfg   domain.Config
	store ports.ArtifactStore
}

// loadWorkspace requires a workspace, either given explicitly or found
// upward from the working directory.
func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:  root,
		cfg:   cfg,
		store: runstore.NewJSONStore(root, cfg, runstore.WithIndex(true)),
	}, nil
}

// optionalWorkspace is loadWorkspace for commands that also work without
// one. A missing workspace yields nil; a broken aoc.yaml is still an error.
func optionalWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	ws, err := loadWorkspace(workspaceFlag)
	if err != nil && strings.TrimSpace(workspaceFlag) == "" && domain.IsKind(err, domain.KindNotFound) {
		return nil, nil
	}
	return ws, err
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	var locator ports.WorkspaceLocator = workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `aoc init`): %w", wd, err)
	}
	return root, nil
}

// resolveInputPath picks the input for day: an explicit path wins, then
// the day override in aoc.yaml, then the configured input pattern.
func resolveInputPath(ws *workspaceCtx, day int, explicit string) (string, error) {
	if in := strings.TrimSpace(explicit); in != "" {
		return in, nil
	}
	if ws == nil {
		return defaultInput, nil
	}

	if dc, ok := ws.cfg.Days[day]; ok && strings.TrimSpace(dc.Input) != "" {
		return ws.abs(dc.Input), nil
	}

	p, err := template.RenderString(ws.cfg.Paths.InputPattern, ws.cfg.InputVars(day))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(p) == "" {
		return defaultInput, nil
	}
	return ws.abs(p), nil
}

func (ws *workspaceCtx) abs(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(ws.root, filepath.FromSlash(p))
}
