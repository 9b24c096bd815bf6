// Package reports classifies reactor level reports as safe when they move
// steadily in one direction, optionally tolerating one bad level.
package reports

import (
	"log/slog"
	"slices"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/puzzle"
)

// Report is one line of level readings.
type Report []int

var (
	rising  = []int{1, 2, 3}
	falling = []int{-1, -2, -3}
)

// ParseReports reads one report per non-blank line.
func ParseReports(lines []string) ([]Report, error) {
	out := make([]Report, 0, len(lines))
	for i, line := range lines {
		if puzzle.Blank(line) {
			continue
		}
		nums, err := puzzle.Ints(line)
		if err != nil {
			return nil, domain.InvalidLine("reports.parse", i+1, "%v", err)
		}
		out = append(out, Report(nums))
	}
	return out, nil
}

// stepsWithin reports whether every consecutive difference is in allowed.
func stepsWithin(r Report, allowed []int) bool {
	for i := 1; i < len(r); i++ {
		if !slices.Contains(allowed, r[i]-r[i-1]) {
			return false
		}
	}
	return true
}

// IsSafe reports whether r rises or falls by 1..3 at every step.
// Reports with fewer than two levels have no steps and are safe.
func IsSafe(r Report) bool {
	return stepsWithin(r, rising) || stepsWithin(r, falling)
}

// Dampen reports whether r is safe once at most one level is dropped.
// removed is -1 when r is safe as is, otherwise the first index whose
// removal makes it safe.
func Dampen(r Report) (removed int, ok bool) {
	if IsSafe(r) {
		return -1, true
	}
	for i := range r {
		if IsSafe(without(r, i)) {
			return i, true
		}
	}
	return -1, false
}

func IsSafeDampened(r Report) bool {
	_, ok := Dampen(r)
	return ok
}

func without(r Report, i int) Report {
	out := make(Report, 0, len(r)-1)
	out = append(out, r[:i]...)
	return append(out, r[i+1:]...)
}

// CountSafe counts safe reports under the strict or dampened rule.
func CountSafe(rs []Report, dampened bool) int {
	n := 0
	for _, r := range rs {
		if dampened && IsSafeDampened(r) || !dampened && IsSafe(r) {
			n++
		}
	}
	return n
}

// Solver is the day 2 puzzle.
type Solver struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Solver {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Solver{log: log}
}

func (s *Solver) Day() int      { return 2 }
func (s *Solver) Title() string { return "Red-Nosed Reports" }

func (s *Solver) Solve(lines []string, part domain.Part) (int, error) {
	rs, err := ParseReports(lines)
	if err != nil {
		return 0, err
	}

	switch part {
	case domain.PartOne:
		return CountSafe(rs, false), nil
	case domain.PartTwo:
		n := 0
		for i, r := range rs {
			removed, ok := Dampen(r)
			if !ok {
				continue
			}
			n++
			if removed >= 0 {
				s.log.Debug("reports.dampened", "report", i, "removed_index", removed, "removed_level", r[removed])
			}
		}
		return n, nil
	default:
		return 0, puzzle.UnsupportedPart(s.Day(), part)
	}
}

const sample = `7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
`

func (s *Solver) Samples() []domain.Sample {
	return []domain.Sample{
		{Part: domain.PartOne, Input: sample, Want: 2},
		{Part: domain.PartTwo, Input: sample, Want: 4},
	}
}
