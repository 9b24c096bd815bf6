package assert

import (
	"fmt"

	"github.com/aalvaropc/aoc/internal/domain"
)

// Answer compares a computed answer with the expected one.
func Answer(name string, expected int, got int) domain.CheckResult {
	if got == expected {
		return domain.CheckResult{
			Name:    name,
			Passed:  true,
			Message: fmt.Sprintf("answer %d", got),
		}
	}

	return domain.CheckResult{
		Name:    name,
		Passed:  false,
		Message: fmt.Sprintf("expected %d, got %d", expected, got),
	}
}

// Failed records a check that could not produce an answer.
func Failed(name string, err error) domain.CheckResult {
	return domain.CheckResult{
		Name:    name,
		Passed:  false,
		Message: fmt.Sprintf("error: %v", err),
	}
}
