package template

import (
	"testing"

	"github.com/aalvaropc/aoc/internal/domain"
)

func TestRenderStringSingleVar(t *testing.T) {
	out, err := RenderString("inputs/dec{{day}}.txt", map[string]string{"day": "3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "inputs/dec3.txt" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringMultipleVars(t *testing.T) {
	out, err := RenderString("{{ inputs_dir }}/{{year}}/day{{day}}.txt", map[string]string{
		"inputs_dir": "data",
		"year":       "2024",
		"day":        "1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "data/2024/day1.txt" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringNoPlaceholders(t *testing.T) {
	out, err := RenderString("input.txt", nil)
	if err != nil || out != "input.txt" {
		t.Fatalf("expected passthrough, got %q, %v", out, err)
	}
}

func TestRenderStringMissingVar(t *testing.T) {
	_, err := RenderString("dec{{day}}.txt", map[string]string{})
	if !domain.IsKind(err, domain.KindMissingVar) {
		t.Fatalf("expected KindMissingVar, got %v", err)
	}
}

func TestRenderStringMalformed(t *testing.T) {
	for _, in := range []string{"dec{{day.txt", "dec{{ }}.txt"} {
		_, err := RenderString(in, map[string]string{"day": "1"})
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("RenderString(%q): expected KindInvalidConfig, got %v", in, err)
		}
	}
}
