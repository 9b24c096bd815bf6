package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Part selects which half of a day's puzzle to solve.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

func (p Part) Valid() bool {
	return p == PartOne || p == PartTwo
}

func (p Part) String() string {
	return strconv.Itoa(int(p))
}

// ParsePart accepts "1", "2", "one", "two" (case-insensitive).
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "one":
		return PartOne, nil
	case "2", "two":
		return PartTwo, nil
	default:
		return 0, &OpError{
			Op:   "domain.parse_part",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("unsupported part %q (expected 1|2): %w", s, ErrInvalidInput),
		}
	}
}

// ParseDay accepts "1", "01", "dec1", "day1".
func ParseDay(s string) (int, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	in = strings.TrimPrefix(in, "dec")
	in = strings.TrimPrefix(in, "day")

	d, err := strconv.Atoi(in)
	if err != nil || d < 1 || d > 25 {
		return 0, &OpError{
			Op:   "domain.parse_day",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("unsupported day %q (expected 1..25): %w", s, ErrInvalidInput),
		}
	}
	return d, nil
}

// PuzzleRef identifies a registered puzzle.
type PuzzleRef struct {
	Day   int
	Title string
}

// Sample is a worked example shipped with a solver.
type Sample struct {
	Part  Part
	Input string
	Want  int
}

// Lines splits the sample input the same way an input file is read.
func (s Sample) Lines() []string {
	text := strings.TrimRight(s.Input, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
