// Package locations reconciles two columns of location IDs: the total
// distance between the sorted columns, and a similarity score weighted by
// how often each left ID appears on the right.
package locations

import (
	"log/slog"
	"slices"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/puzzle"
)

const op = "locations.parse"

// ParseLists splits each line into a left and a right column value. Every
// line, blank ones included, must hold exactly two integers.
func ParseLists(lines []string) (left, right []int, err error) {
	left = make([]int, 0, len(lines))
	right = make([]int, 0, len(lines))

	for i, line := range lines {
		nums, perr := puzzle.Ints(line)
		if perr != nil {
			return nil, nil, domain.InvalidLine(op, i+1, "%v", perr)
		}
		if len(nums) != 2 {
			return nil, nil, domain.InvalidLine(op, i+1, "expected 2 integers, got %d", len(nums))
		}
		left = append(left, nums[0])
		right = append(right, nums[1])
	}
	return left, right, nil
}

// TotalDistance pairs the i-th smallest values of each column and sums
// their absolute differences. The inputs are left untouched.
func TotalDistance(left, right []int) int {
	l := slices.Clone(left)
	r := slices.Clone(right)
	slices.Sort(l)
	slices.Sort(r)

	n := min(len(l), len(r))
	total := 0
	for i := range n {
		total += puzzle.AbsDiff(l[i], r[i])
	}
	return total
}

// Similarity sums each left value multiplied by its count in right.
func Similarity(left, right []int) int {
	counts := make(map[int]int, len(right))
	for _, v := range right {
		counts[v]++
	}

	score := 0
	for _, v := range left {
		score += v * counts[v]
	}
	return score
}

// Solver is the day 1 puzzle.
type Solver struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Solver {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Solver{log: log}
}

func (s *Solver) Day() int      { return 1 }
func (s *Solver) Title() string { return "Historian Hysteria" }

func (s *Solver) Solve(lines []string, part domain.Part) (int, error) {
	left, right, err := ParseLists(lines)
	if err != nil {
		return 0, err
	}
	s.log.Debug("locations.parsed", "pairs", len(left))

	switch part {
	case domain.PartOne:
		return TotalDistance(left, right), nil
	case domain.PartTwo:
		return Similarity(left, right), nil
	default:
		return 0, puzzle.UnsupportedPart(s.Day(), part)
	}
}

const sample = `3   4
4   3
2   5
1   3
3   9
3   3
`

func (s *Solver) Samples() []domain.Sample {
	return []domain.Sample{
		{Part: domain.PartOne, Input: sample, Want: 11},
		{Part: domain.PartTwo, Input: sample, Want: 31},
	}
}

