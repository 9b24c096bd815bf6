package template

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/aoc/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", renderError(domain.KindInvalidConfig, input,
				fmt.Errorf("unclosed template expression: %w", domain.ErrInvalidConfig))
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", renderError(domain.KindInvalidConfig, input,
				fmt.Errorf("empty template expression: %w", domain.ErrInvalidConfig))
		}

		value, ok := vars[key]
		if !ok {
			return "", renderError(domain.KindMissingVar, input,
				fmt.Errorf("missing variable %q: %w", key, domain.ErrMissingVar))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

func renderError(kind domain.ErrorKind, input string, err error) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: kind,
		Err:  fmt.Errorf("%q: %w", input, err),
	}
}
