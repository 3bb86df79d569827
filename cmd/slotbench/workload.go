package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Workload describes one benchmark case.
type Workload struct {
	// Name labels the result row.
	Name string `yaml:"name"`
	// Backend selects the storage under test: heap, arena, inline or
	// fallback.
	Backend string `yaml:"backend"`
	// Ops is the number of push/pop (or grow) operations to run.
	Ops int `yaml:"ops"`
	// Slots sizes the inline backing for the inline and fallback backends.
	Slots int `yaml:"slots"`
	// Rounds repeats the workload to smooth out timer noise.
	Rounds int `yaml:"rounds"`
}

// Suite is the top-level YAML document.
type Suite struct {
	Workloads []Workload `yaml:"workloads"`
}

var knownBackends = map[string]bool{
	"heap":     true,
	"arena":    true,
	"inline":   true,
	"fallback": true,
}

// loadSuite parses and validates a workload file.
func loadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload file: %w", err)
	}
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse workload file: %w", err)
	}
	if len(s.Workloads) == 0 {
		return nil, fmt.Errorf("workload file %s defines no workloads", path)
	}
	for i := range s.Workloads {
		w := &s.Workloads[i]
		if w.Name == "" {
			w.Name = fmt.Sprintf("%s-%d", w.Backend, i)
		}
		if !knownBackends[w.Backend] {
			return nil, fmt.Errorf("workload %q: unknown backend %q", w.Name, w.Backend)
		}
		if w.Ops <= 0 {
			w.Ops = 100000
		}
		if w.Slots <= 0 {
			w.Slots = 1024
		}
		if w.Rounds <= 0 {
			w.Rounds = 3
		}
	}
	return &s, nil
}

// defaultSuite is used when no workload file is given.
func defaultSuite() *Suite {
	return &Suite{Workloads: []Workload{
		{Name: "heap-list", Backend: "heap", Ops: 100000, Rounds: 3},
		{Name: "arena-list", Backend: "arena", Ops: 100000, Rounds: 3},
		{Name: "inline-list", Backend: "inline", Ops: 100000, Slots: 1024, Rounds: 3},
		{Name: "fallback-list", Backend: "fallback", Ops: 100000, Slots: 64, Rounds: 3},
	}}
}
