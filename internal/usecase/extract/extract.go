package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/aoc/internal/domain"
)

// Field evaluates a JSONPath expression against a JSON document and
// renders the match as a string. Numbers keep their exact JSON text.
func Field(doc []byte, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", fieldError(domain.KindInvalidInput, expr, fmt.Errorf("empty jsonpath expression: %w", domain.ErrInvalidInput))
	}

	v, err := parseJSON(doc)
	if err != nil {
		return "", fieldError(domain.KindInvalidInput, expr, fmt.Errorf("document is not valid JSON: %w", err))
	}

	val, err := jsonpath.Get(expr, v)
	if err != nil {
		return "", fieldError(domain.KindInvalidInput, expr, fmt.Errorf("jsonpath error: %w", err))
	}

	if isEmptyValue(val) {
		return "", fieldError(domain.KindNotFound, expr, fmt.Errorf("no value found: %w", domain.ErrNotFound))
	}

	s, err := toString(val)
	if err != nil {
		return "", fieldError(domain.KindExecution, expr, fmt.Errorf("cannot convert value to string: %w", err))
	}
	return s, nil
}

func fieldError(kind domain.ErrorKind, expr string, err error) error {
	return &domain.OpError{
		Op:   "extract.field",
		Kind: kind,
		Err:  fmt.Errorf("%s: %w", expr, err),
	}
}

func parseJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// Common case: jsonpath returns a slice with 1 element
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return "", fmt.Errorf("empty array")
		}
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return fmt.Sprint(t), nil
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}
