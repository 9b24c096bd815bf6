package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/ports"
	ucassert "github.com/aalvaropc/aoc/internal/usecase/assert"
)

// SolveRequest selects one puzzle part and the file to read it from.
type SolveRequest struct {
	Day       int
	Part      domain.Part
	InputPath string
	// Expected, when set, is compared against the answer.
	Expected *int
}

type SolvePuzzle struct {
	puzzles ports.PuzzleCatalog
	inputs  ports.InputSource
	store   ports.ArtifactStore
	log     *slog.Logger
	now     func() time.Time
}

type SolveOption func(*SolvePuzzle)

// WithStore persists every solve. A nil store disables saving.
func WithStore(store ports.ArtifactStore) SolveOption {
	return func(uc *SolvePuzzle) { uc.store = store }
}

func WithLogger(log *slog.Logger) SolveOption {
	return func(uc *SolvePuzzle) {
		if log != nil {
			uc.log = log
		}
	}
}

// WithClock overrides the clock (useful for tests).
func WithClock(now func() time.Time) SolveOption {
	return func(uc *SolvePuzzle) { uc.now = now }
}

func NewSolvePuzzle(puzzles ports.PuzzleCatalog, inputs ports.InputSource, opts ...SolveOption) *SolvePuzzle {
	uc := &SolvePuzzle{
		puzzles: puzzles,
		inputs:  inputs,
		log:     slog.New(slog.DiscardHandler),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute reads the input, solves it and, when configured, checks and
// saves the result. The returned id is empty when nothing was saved.
func (uc *SolvePuzzle) Execute(ctx context.Context, req SolveRequest) (domain.RunArtifact, string, error) {
	if !req.Part.Valid() {
		return domain.RunArtifact{}, "", &domain.OpError{
			Op:   "solve.validate",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("part %d: %w", int(req.Part), domain.ErrInvalidInput),
		}
	}

	solver, err := uc.puzzles.Lookup(req.Day)
	if err != nil {
		return domain.RunArtifact{}, "", err
	}

	lines, err := uc.inputs.ReadLines(req.InputPath)
	if err != nil {
		return domain.RunArtifact{}, "", err
	}

	if err := ctx.Err(); err != nil {
		return domain.RunArtifact{}, "", err
	}

	run := domain.RunArtifact{
		Day:       req.Day,
		Part:      req.Part,
		Title:     solver.Title(),
		InputPath: req.InputPath,
		Lines:     len(lines),
		StartedAt: uc.now(),
	}

	answer, err := solver.Solve(lines, req.Part)
	if err != nil {
		uc.log.Error("solve.failed", "day", req.Day, "part", int(req.Part), "input", req.InputPath, "err", err)
		return domain.RunArtifact{}, "", domain.WithPath(err, req.InputPath)
	}
	run.Answer = answer
	run.EndedAt = uc.now()

	if req.Expected != nil {
		want := *req.Expected
		check := ucassert.Answer("answer", want, answer)
		run.Expected = &want
		run.Check = &check
	}

	uc.log.Info("solve.done",
		"day", req.Day,
		"part", int(req.Part),
		"input", req.InputPath,
		"lines", len(lines),
		"answer", answer,
		"duration", run.EndedAt.Sub(run.StartedAt),
	)

	if uc.store == nil {
		return run, "", nil
	}

	id, err := uc.store.SaveRun(run)
	run.ID = id
	return run, id, err
}
