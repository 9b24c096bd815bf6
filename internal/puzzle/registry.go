package puzzle

import (
	"fmt"
	"sort"

	"github.com/aalvaropc/aoc/internal/domain"
)

// Solver solves both parts of a single day.
type Solver interface {
	Day() int
	Title() string
	Solve(lines []string, part domain.Part) (int, error)
	Samples() []domain.Sample
}

// Registry maps day numbers to solvers.
type Registry struct {
	byDay map[int]Solver
}

func NewRegistry(solvers ...Solver) *Registry {
	r := &Registry{byDay: map[int]Solver{}}
	for _, s := range solvers {
		r.Register(s)
	}
	return r
}

// Register panics on a duplicate day; registration happens at wiring time.
func (r *Registry) Register(s Solver) {
	if _, dup := r.byDay[s.Day()]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", s.Day()))
	}
	r.byDay[s.Day()] = s
}

func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.byDay[day]
	if !ok {
		return nil, &domain.OpError{
			Op:   "puzzle.lookup",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("no solver for day %d: %w", day, domain.ErrNotFound),
		}
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.byDay))
	for d := range r.byDay {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

func (r *Registry) Refs() []domain.PuzzleRef {
	days := r.Days()
	out := make([]domain.PuzzleRef, 0, len(days))
	for _, d := range days {
		out = append(out, domain.PuzzleRef{Day: d, Title: r.byDay[d].Title()})
	}
	return out
}

// UnsupportedPart is returned by a solver asked for a part it does not have.
func UnsupportedPart(day int, p domain.Part) error {
	return &domain.OpError{
		Op:   "puzzle.solve",
		Kind: domain.KindInvalidInput,
		Err:  fmt.Errorf("day %d has no part %d: %w", day, int(p), domain.ErrInvalidInput),
	}
}
