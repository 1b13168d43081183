package main

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoScenario []byte

//go:embed scenario.schema.json
var scenarioSchema string

// Scenario actions.
const (
	ActionTick    = "tick"
	ActionKill    = "kill"
	ActionTrigger = "trigger"
	ActionMove    = "move"
	ActionMap     = "map"
	ActionRespawn = "respawn"
	ActionDespawn = "despawn"
	ActionSet     = "set"
	ActionReset   = "reset"
)

// Scenario is a timed script of game events.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one event at world time At.
type Step struct {
	At     float64    `yaml:"at"`
	Action string     `yaml:"action"`
	Friend bool       `yaml:"friend,omitempty"` // kill: victim is not hostile
	Name   string     `yaml:"name,omitempty"`   // trigger name or option name
	Value  int        `yaml:"value,omitempty"`  // set: new option value
	Pos    [3]float64 `yaml:"pos,omitempty"`    // move: destination
	Map    string     `yaml:"map,omitempty"`    // map: destination map
}

// loadScenario reads and validates a scenario file; an empty path loads the
// built-in demo.
func loadScenario(path string) (Scenario, error) {
	data := demoScenario
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return Scenario{}, fmt.Errorf("reading scenario %s: %w", path, err)
		}
	}
	return parseScenario(data)
}

func parseScenario(data []byte) (Scenario, error) {
	if err := validateScenario(data); err != nil {
		return Scenario{}, err
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario: %w", err)
	}
	sort.SliceStable(sc.Steps, func(i, j int) bool {
		return sc.Steps[i].At < sc.Steps[j].At
	})
	return sc, nil
}

func validateScenario(data []byte) error {
	sch, err := jsonschema.CompileString("oakbuffs://scenario.schema.json", scenarioSchema)
	if err != nil {
		return fmt.Errorf("compiling scenario schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing scenario: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("converting scenario: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("converting scenario: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}
	return nil
}
