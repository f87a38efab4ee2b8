// Package scenario loads search problems from YAML files.
//
// A scenario file looks like:
//
//	grid:
//	  - ".#."
//	  - ".#."
//	  - "..."
//	start: [0, 0]
//	goal: [0, 2]
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridastar"
)

// ErrInvalidScenario is returned for documents that parse but do not describe a search.
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is one grid with a start and a goal.
type Scenario struct {
	Grid  gridastar.Grid
	Start gridastar.Position
	Goal  gridastar.Position
}

type document struct {
	Grid  []string `yaml:"grid"`
	Start []int    `yaml:"start"`
	Goal  []int    `yaml:"goal"`
}

// Load reads and parses the scenario file at path.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a YAML scenario document. Unknown fields are rejected.
func Parse(data []byte) (Scenario, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}

	if len(doc.Grid) == 0 {
		return Scenario{}, fmt.Errorf("grid is empty: %w", ErrInvalidScenario)
	}
	grid, err := gridastar.ParseGrid(doc.Grid...)
	if err != nil {
		return Scenario{}, err
	}
	start, err := toPosition("start", doc.Start)
	if err != nil {
		return Scenario{}, err
	}
	goal, err := toPosition("goal", doc.Goal)
	if err != nil {
		return Scenario{}, err
	}
	return Scenario{Grid: grid, Start: start, Goal: goal}, nil
}

func toPosition(field string, pair []int) (gridastar.Position, error) {
	if len(pair) != 2 {
		return gridastar.Position{}, fmt.Errorf("%s must be [row, col], got %d values: %w", field, len(pair), ErrInvalidScenario)
	}
	return gridastar.Position{Row: pair[0], Col: pair[1]}, nil
}
