package domain

import (
	"fmt"
	"strconv"
)

// Config represents the aoc configuration loaded from aoc.yaml.
type Config struct {
	Year  int
	Paths PathsConfig
	Days  map[int]DayConfig
}

type PathsConfig struct {
	InputsDir    string
	RunsDir      string
	InputPattern string
}

// DayConfig holds per-day overrides.
type DayConfig struct {
	Input   string
	Answers map[Part]int
}

// DefaultConfig provides sane defaults if aoc.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Year: 2024,
		Paths: PathsConfig{
			InputsDir:    "inputs",
			RunsDir:      "runs",
			InputPattern: "{{inputs_dir}}/dec{{day}}.txt",
		},
		Days: map[int]DayConfig{},
	}
}

// Answer returns the known answer for day/part, if configured.
func (c Config) Answer(day int, part Part) (int, bool) {
	dc, ok := c.Days[day]
	if !ok {
		return 0, false
	}
	v, ok := dc.Answers[part]
	return v, ok
}

// InputVars are the variables available to Paths.InputPattern for day.
func (c Config) InputVars(day int) map[string]string {
	return map[string]string{
		"inputs_dir": c.Paths.InputsDir,
		"year":       strconv.Itoa(c.Year),
		"day":        strconv.Itoa(day),
		"day2":       fmt.Sprintf("%02d", day),
	}
}

// WorkspaceSpec describes a workspace to scaffold. InputFiles are
// slash-separated paths relative to Root, created empty when missing.
type WorkspaceSpec struct {
	Root       string
	InputFiles []string
}
