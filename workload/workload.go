package workload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/avoskan/graphrat/fractal"
	"github.com/avoskan/graphrat/maze"
	"github.com/avoskan/graphrat/rats"
)

// Sentinel errors for suite validation.
var (
	// ErrEmptySuite indicates a suite file with no workloads.
	ErrEmptySuite = errors.New("workload: suite defines no workloads")
	// ErrInvalidSpec indicates a workload whose fields fail validation.
	ErrInvalidSpec = errors.New("workload: invalid workload spec")
)

// TreeSpec describes one partition tree. Exactly one construction mode
// applies: uniform counts when UniformX is set, random growth otherwise
// (Hilbert or plain fractal).
type TreeSpec struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Leaves   int     `yaml:"leaves"`
	Seed     int64   `yaml:"seed"`
	Hilbert  bool    `yaml:"hilbert"`
	UniformX int     `yaml:"uniform_x"`
	UniformY int     `yaml:"uniform_y"`
	AreaExp  float64 `yaml:"area_exp"`
	DistExp  float64 `yaml:"dist_exp"`
}

// ILFRange bounds the per-node ideal load factor draw.
type ILFRange struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

// GraphSpec describes the graph derived from the workload's tree.
type GraphSpec struct {
	Expansion int      `yaml:"expansion"`
	ILF       ILFRange `yaml:"ilf"`
	Seed      int64    `yaml:"seed"`
	Regions   bool     `yaml:"regions"`
	SVG       bool     `yaml:"svg"`
}

// RatSpec describes one placement file for the workload's graph.
type RatSpec struct {
	Mode string `yaml:"mode"`
	Load int    `yaml:"load"`
	Seed int64  `yaml:"seed"`
}

// Workload is one named tree+graph+placements generation unit.
type Workload struct {
	Name  string    `yaml:"name"`
	Tree  TreeSpec  `yaml:"tree"`
	Graph GraphSpec `yaml:"graph"`
	Rats  []RatSpec `yaml:"rats"`
}

// Suite is a parsed, validated suite file.
type Suite struct {
	Workloads []Workload `yaml:"workloads"`
}

// Load parses and validates a suite. Unknown YAML fields are rejected so
// a typoed knob fails loudly instead of silently using a default.
func Load(r io.Reader) (*Suite, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Suite
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("workload: parsing suite: %w", err)
	}
	if len(s.Workloads) == 0 {
		return nil, ErrEmptySuite
	}
	for i := range s.Workloads {
		if err := s.Workloads[i].validate(); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// LoadFile opens and Loads a suite file.
func LoadFile(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("workload: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// validate applies defaults and rejects inconsistent specs. It mirrors
// the validation the generators perform, so Run cannot fail halfway
// through a suite on a bad parameter.
func (w *Workload) validate() error {
	if w.Name == "" {
		return fmt.Errorf("workload: unnamed workload: %w", ErrInvalidSpec)
	}
	t := &w.Tree
	if t.Width < 1 || t.Height < 1 {
		return fmt.Errorf("workload %q: tree %dx%d: %w", w.Name, t.Width, t.Height, ErrInvalidSpec)
	}
	if (t.UniformX == 0) != (t.UniformY == 0) {
		return fmt.Errorf("workload %q: uniform_x and uniform_y must be set together: %w", w.Name, ErrInvalidSpec)
	}
	if t.UniformX == 0 && t.Leaves < 1 {
		return fmt.Errorf("workload %q: leaves = %d: %w", w.Name, t.Leaves, ErrInvalidSpec)
	}
	g := &w.Graph
	if g.Expansion == 0 {
		g.Expansion = maze.DefaultExpansion
	}
	if g.ILF == (ILFRange{}) {
		g.ILF = ILFRange{Low: maze.DefaultILFLow, High: maze.DefaultILFHigh}
	}
	if g.Expansion < 1 || g.ILF.Low <= 0 || g.ILF.High < g.ILF.Low {
		return fmt.Errorf("workload %q: graph spec: %w", w.Name, ErrInvalidSpec)
	}
	for i, r := range w.Rats {
		if _, err := rats.ParseMode(r.Mode); err != nil {
			return fmt.Errorf("workload %q: rats[%d]: %w", w.Name, i, err)
		}
		if r.Load < 1 {
			return fmt.Errorf("workload %q: rats[%d] load = %d: %w", w.Name, i, r.Load, ErrInvalidSpec)
		}
	}
	return nil
}

// buildTree constructs the workload's partition tree.
func (w *Workload) buildTree() (*fractal.Tree, error) {
	t := w.Tree
	if t.UniformX != 0 {
		return fractal.Uniform(t.Width, t.Height, t.UniformX, t.UniformY)
	}
	return fractal.Grow(t.Width, t.Height, t.Leaves, t.Seed, fractal.GrowOptions{
		AreaExponent:     t.AreaExp,
		DistanceExponent: t.DistExp,
		Hilbert:          t.Hilbert,
	})
}

// Run generates every workload into dir: NAME.tree, NAME.graph,
// NAME.svg when requested, and NAME-MODE-LOAD.rats per placement.
// The first failure stops the run.
func (s *Suite) Run(dir string) error {
	for _, w := range s.Workloads {
		if err := w.run(dir); err != nil {
			return err
		}
	}
	return nil
}

func (w *Workload) run(dir string) error {
	tree, err := w.buildTree()
	if err != nil {
		return fmt.Errorf("workload %q: %w", w.Name, err)
	}
	if err := writeFile(filepath.Join(dir, w.Name+".tree"), func(f io.Writer) error {
		return tree.Store(f)
	}); err != nil {
		return fmt.Errorf("workload %q: %w", w.Name, err)
	}

	graph, err := maze.Generate(tree, maze.Options{
		Expansion: w.Graph.Expansion,
		ILFLow:    w.Graph.ILF.Low,
		ILFHigh:   w.Graph.ILF.High,
		Seed:      w.Graph.Seed,
		Regions:   w.Graph.Regions,
		MaxHubs:   maze.DefaultMaxHubs,
		MinAspect: maze.DefaultMinAspect,
	})
	if err != nil {
		return fmt.Errorf("workload %q: %w", w.Name, err)
	}
	if err := writeFile(filepath.Join(dir, w.Name+".graph"), graph.Store); err != nil {
		return fmt.Errorf("workload %q: %w", w.Name, err)
	}
	if w.Graph.SVG {
		if err := writeFile(filepath.Join(dir, w.Name+".svg"), func(f io.Writer) error {
			graph.RenderSVG(f, maze.DefaultGridSpacing)
			return nil
		}); err != nil {
			return fmt.Errorf("workload %q: %w", w.Name, err)
		}
	}

	for _, r := range w.Rats {
		mode, _ := rats.ParseMode(r.Mode) // validated at load time
		name := fmt.Sprintf("%s-%s-%d.rats", w.Name, r.Mode, r.Load)
		if err := writeFile(filepath.Join(dir, name), func(f io.Writer) error {
			return rats.Store(f, graph, mode, r.Load, r.Seed)
		}); err != nil {
			return fmt.Errorf("workload %q: %w", w.Name, err)
		}
	}
	return nil
}

// writeFile creates path and streams fn into it, surfacing the first of
// the write and close errors.
func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
