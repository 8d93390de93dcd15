package core

import (
	"fmt"
	"sort"
)

// Sim defines the contract a host driver relies on to run a cellular automaton.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Step()
	Generation() uint64
	Words() []uint64
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up the named factory and invokes it with cfg.
func Build(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", name)
	}
	return f(cfg)
}
