// Package corrupt recovers multiplication instructions from corrupted
// program memory, optionally honouring do()/don't() toggles.
package corrupt

import (
	"log/slog"
	"regexp"
	"strconv"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/puzzle"
)

const (
	enableToken  = "do()"
	disableToken = "don't()"
)

var (
	mulRe     = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)`)
	controlRe = regexp.MustCompile(`do\(\)|don't\(\)`)
)

// SumProducts adds X*Y for every mul(X,Y) in text.
func SumProducts(text string) int {
	sum := 0
	for _, m := range mulRe.FindAllStringSubmatch(text, -1) {
		// Both groups are 1-3 digits, Atoi cannot fail.
		x, _ := strconv.Atoi(m[1])
		y, _ := strconv.Atoi(m[2])
		sum += x * y
	}
	return sum
}

// Scanner tracks whether instructions are enabled. The state carries over
// from one line to the next; the zero value is not ready, use NewScanner.
type Scanner struct {
	enabled bool
}

func NewScanner() *Scanner {
	return &Scanner{enabled: true}
}

func (s *Scanner) Enabled() bool { return s.enabled }

// Pieces returns the enabled stretches of line in order and updates the
// carried state. Repeated toggles to the current state change nothing.
func (s *Scanner) Pieces(line string) []string {
	var pieces []string
	start := 0
	for _, loc := range controlRe.FindAllStringIndex(line, -1) {
		next := line[loc[0]:loc[1]] == enableToken
		if next == s.enabled {
			continue
		}
		if s.enabled {
			pieces = append(pieces, line[start:loc[0]])
		} else {
			start = loc[1]
		}
		s.enabled = next
	}
	if s.enabled {
		pieces = append(pieces, line[start:])
	}
	return pieces
}

// SumAll ignores the toggles.
func SumAll(lines []string) int {
	sum := 0
	for _, line := range lines {
		sum += SumProducts(line)
	}
	return sum
}

// SumEnabled only counts instructions inside enabled stretches, with a
// single Scanner spanning all lines.
func SumEnabled(lines []string) int {
	sc := NewScanner()
	sum := 0
	for _, line := range lines {
		for _, p := range sc.Pieces(line) {
			sum += SumProducts(p)
		}
	}
	return sum
}

// Solver is the day 3 puzzle.
type Solver struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Solver {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Solver{log: log}
}

func (s *Solver) Day() int      { return 3 }
func (s *Solver) Title() string { return "Mull It Over" }

func (s *Solver) Solve(lines []string, part domain.Part) (int, error) {
	switch part {
	case domain.PartOne:
		return SumAll(lines), nil
	case domain.PartTwo:
		sum := SumEnabled(lines)
		s.log.Debug("corrupt.scanned", "lines", len(lines), "sum", sum)
		return sum, nil
	default:
		return 0, puzzle.UnsupportedPart(s.Day(), part)
	}
}

func (s *Solver) Samples() []domain.Sample {
	return []domain.Sample{
		{
			Part:  domain.PartOne,
			Input: "xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))\n",
			Want:  161,
		},
		{
			Part:  domain.PartTwo,
			Input: "xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))\n",
			Want:  48,
		},
	}
}
