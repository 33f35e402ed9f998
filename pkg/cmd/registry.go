package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultRegistry is the global registry used by hosts (Discord, console).
var DefaultRegistry = NewRegistry()

// Registry stores root commands by name and alias. Like a Builder it must be
// fully populated before the first Dispatch.
type Registry struct {
	commands map[string]*Node
	roots    []*Node
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Node)}
}

// Register adds a built root command under its name and aliases. A key
// already taken leaves the registry unchanged and returns
// ErrConfigurationConflict.
func (r *Registry) Register(n *Node) error {
	if _, hasParent := n.Parent(); hasParent {
		return &ConfigError{Command: n.Path(), Err: fmt.Errorf("%w: not a root command", ErrInvalidCommand)}
	}
	for _, key := range n.Keys() {
		if _, taken := r.commands[key]; taken {
			return &ConfigError{Command: n.name, Key: key, Err: ErrConfigurationConflict}
		}
	}
	for _, key := range n.Keys() {
		r.commands[key] = n
	}
	r.roots = append(r.roots, n)
	return nil
}

// MustRegister builds and registers each builder, panicking on error.
func (r *Registry) MustRegister(builders ...*Builder) {
	for _, b := range builders {
		if err := r.Register(b.MustBuild()); err != nil {
			panic(err)
		}
	}
}

// Get returns the command registered under label, or nil.
func (r *Registry) Get(label string) *Node {
	return r.commands[label]
}

// GetAll returns all root commands, sorted by name.
func (r *Registry) GetAll() []*Node {
	list := append([]*Node(nil), r.roots...)
	sort.Slice(list, func(i, j int) bool {
		return list[i].name < list[j].name
	})
	return list
}

// Dispatch executes a full command line: line[0] is the label, the rest are
// the arguments.
func (r *Registry) Dispatch(ctx context.Context, actor Actor, sink Sink, line []string) (Outcome, error) {
	if len(line) == 0 {
		return 0, ErrNoCommand
	}
	label := line[0]
	n := r.commands[label]
	if n == nil {
		if s := r.Suggest(label); s != "" {
			return 0, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownCommand, label, s)
		}
		return 0, fmt.Errorf("%w %q", ErrUnknownCommand, label)
	}
	return n.Execute(ctx, actor, sink, label, line[1:])
}

// Suggest returns the registered key closest to label, or "" when nothing
// is close enough to be a plausible typo.
func (r *Registry) Suggest(label string) string {
	best, bestDistance := "", -1
	for key := range r.commands {
		d := fuzzy.LevenshteinDistance(label, key)
		if d > 2 || d > len(key)/2 {
			continue
		}
		if bestDistance < 0 || d < bestDistance || (d == bestDistance && key < best) {
			best, bestDistance = key, d
		}
	}
	return best
}
