package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/aoc/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads aoc.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.AOC.Year != 0 {
		cfg.Year = y.AOC.Year
	}
	if y.AOC.Paths.InputsDir != "" {
		cfg.Paths.InputsDir = y.AOC.Paths.InputsDir
	}
	if y.AOC.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = y.AOC.Paths.RunsDir
	}
	if y.AOC.Paths.InputPattern != "" {
		cfg.Paths.InputPattern = y.AOC.Paths.InputPattern
	}

	for day, d := range y.AOC.Days {
		if day < 1 || day > 25 {
			return cfg, invalidField(path, fmt.Sprintf("days.%d", day), "day must be within 1..25")
		}
		dc := domain.DayConfig{
			Input:   d.Input,
			Answers: make(map[domain.Part]int, len(d.Answers)),
		}
		for part, ans := range d.Answers {
			p := domain.Part(part)
			if !p.Valid() {
				return cfg, invalidField(path, fmt.Sprintf("days.%d.answers.%d", day, part), "part must be 1 or 2")
			}
			dc.Answers[p] = ans
		}
		cfg.Days[day] = dc
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	AOC struct {
		Year int `yaml:"year"`

		Paths struct {
			InputsDir    string `yaml:"inputs_dir"`
			RunsDir      string `yaml:"runs_dir"`
			InputPattern string `yaml:"input_pattern"`
		} `yaml:"paths"`

		Days map[int]yamlDay `yaml:"days"`
	} `yaml:"aoc"`
}

type yamlDay struct {
	Input   string      `yaml:"input"`
	Answers map[int]int `yaml:"answers"`
}
