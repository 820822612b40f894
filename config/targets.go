// Package config holds the generation targets of the regmap tool. Each target
// names an IP-XACT description, the address block to read from it and the Go
// file to write.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gopkg.in/yaml.v3"
)

//go:embed targets.yaml
var rawTargets []byte

var (
	ErrTargetNotFound = errors.New("target not found")
	ErrInvalidTarget  = errors.New("invalid target")
	ErrTargetCycle    = errors.New("targets depend on each other")
)

type Targets []TargetInfo
type TargetInfo struct {
	Name    string   `yaml:"name"`
	Input   string   `yaml:"input"`
	Block   string   `yaml:"block"`
	Package string   `yaml:"package"`
	Output  string   `yaml:"output"`
	After   []string `yaml:"after"`
}

// Default returns the targets shipped with the tool. Their paths are relative
// to the repository root.
func Default() Targets {
	targets, err := Parse(rawTargets)
	if err != nil {
		panic(err)
	}
	return targets
}

// Load reads a target file. Relative paths in it are resolved against the
// directory holding the file.
func Load(path string) (Targets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	targets, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i := range targets {
		targets[i].Input = resolve(dir, targets[i].Input)
		targets[i].Output = resolve(dir, targets[i].Output)
	}
	return targets, nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func Parse(data []byte) (Targets, error) {
	var t struct {
		Elements Targets `yaml:"targets"`
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}

	var errs []error
	seen := map[string]bool{}
	for i := range t.Elements {
		target := &t.Elements[i]
		if target.Name == "" {
			errs = append(errs, fmt.Errorf("%w: target %d has no name", ErrInvalidTarget, i))
			continue
		}
		// Names are matched without regard to case
		key := strings.ToLower(target.Name)
		if seen[key] {
			errs = append(errs, fmt.Errorf("%w: %s declared twice", ErrInvalidTarget, target.Name))
		}
		seen[key] = true

		if target.Input == "" || target.Output == "" {
			errs = append(errs, fmt.Errorf("%w: %s needs an input and an output", ErrInvalidTarget, target.Name))
		}
		if target.Package == "" {
			target.Package = filepath.Base(filepath.Dir(target.Output))
		}
	}
	for _, target := range t.Elements {
		for _, dep := range target.After {
			if !seen[strings.ToLower(dep)] {
				errs = append(errs, fmt.Errorf("%w: %s runs after unknown target %s", ErrInvalidTarget, target.Name, dep))
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return t.Elements, nil
}

func (t Targets) Find(name string) (TargetInfo, error) {
	for _, target := range t {
		if strings.EqualFold(target.Name, name) {
			return target, nil
		}
	}
	return TargetInfo{}, fmt.Errorf("%w: %s", ErrTargetNotFound, name)
}

func (t Targets) Names() []string {
	names := make([]string, len(t))
	for i, target := range t {
		names[i] = target.Name
	}
	return names
}

// Ordered returns the targets so that each comes after the targets it lists
// in After. Independent targets keep the order they were declared in.
func (t Targets) Ordered() (Targets, error) {
	graph := simple.NewDirectedGraph()
	for i := range t {
		graph.AddNode(simple.Node(i))
	}

	for i, target := range t {
		for _, dep := range target.After {
			j := slices.IndexFunc(t, func(other TargetInfo) bool { return strings.EqualFold(other.Name, dep) })
			if j < 0 {
				return nil, fmt.Errorf("%w: %s runs after unknown target %s", ErrInvalidTarget, target.Name, dep)
			}
			if j == i {
				return nil, fmt.Errorf("%w: %s runs after itself", ErrTargetCycle, target.Name)
			}
			graph.SetEdge(graph.NewEdge(simple.Node(j), simple.Node(i)))
		}
	}

	sorted, err := topo.SortStabilized(graph, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTargetCycle, t.cycles(err))
	}

	ordered := make(Targets, len(sorted))
	for i, node := range sorted {
		ordered[i] = t[node.ID()]
	}
	return ordered, nil
}

func (t Targets) cycles(err error) string {
	var unorderable topo.Unorderable
	if !errors.As(err, &unorderable) {
		return err.Error()
	}

	var cycles []string
	for _, component := range unorderable {
		names := make([]string, len(component))
		for i, node := range component {
			names[i] = t[node.ID()].Name
		}
		slices.Sort(names)
		cycles = append(cycles, strings.Join(names, ", "))
	}
	return strings.Join(cycles, "; ")
}
