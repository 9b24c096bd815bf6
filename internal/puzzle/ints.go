package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Ints parses whitespace-separated decimal integers.
func Ints(line string) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as integer", f)
		}
		out = append(out, n)
	}
	return out, nil
}

// Blank reports whether line holds nothing but whitespace.
func Blank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// AbsDiff returns |a-b|.
func AbsDiff[T constraints.Signed](a, b T) T {
	v := a - b
	if v < 0 {
		v = -v
	}
	return v
}
