// Package catalog wires every implemented day into a registry.
package catalog

import (
	"log/slog"

	"github.com/aalvaropc/aoc/internal/puzzle"
	"github.com/aalvaropc/aoc/internal/puzzle/corrupt"
	"github.com/aalvaropc/aoc/internal/puzzle/locations"
	"github.com/aalvaropc/aoc/internal/puzzle/reports"
)

func Default(log *slog.Logger) *puzzle.Registry {
	return puzzle.NewRegistry(
		locations.New(log),
		reports.New(log),
		corrupt.New(log),
	)
}
