package cmd

import (
	"fmt"
	"strings"
)

// Builder declares a command at configuration time. It is not safe for
// concurrent use; Build freezes it into an immutable Node tree.
type Builder struct {
	name        string
	description string
	permission  string
	aliases     []string
	parser      Parser
	constraints []Constraint
	children    []*Builder
	keys        map[string]*Builder
	middleware  []Middleware
	body        Body
	err         error
}

// NewCommand starts a command declaration. Names and aliases may not be
// empty or contain whitespace; violations surface from Build.
func NewCommand(name, description string, aliases ...string) *Builder {
	b := &Builder{
		name:        name,
		description: description,
		keys:        make(map[string]*Builder),
	}
	if !validKey(name) {
		b.err = &ConfigError{Command: name, Key: name, Err: ErrInvalidCommand}
	}
	for _, a := range aliases {
		if !validKey(a) {
			b.err = &ConfigError{Command: name, Key: a, Err: ErrInvalidCommand}
			continue
		}
		if a != name && !contains(b.aliases, a) {
			b.aliases = append(b.aliases, a)
		}
	}
	return b
}

func validKey(s string) bool {
	return s != "" && !strings.ContainsAny(s, " \t\r\n")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Name returns the declared name.
func (b *Builder) Name() string { return b.name }

// Keys returns the name followed by the aliases, without duplicates.
func (b *Builder) Keys() []string {
	return append([]string{b.name}, b.aliases...)
}

// Permission sets the permission key an actor needs to run this command or
// any of its subcommands.
func (b *Builder) Permission(key string) *Builder {
	b.permission = key
	return b
}

// AddArgument appends a slot. It fails when the slot could never be parsed
// in this position: a required slot after an optional one, anything after a
// variadic or text slot, a duplicate or blank name, or no types.
func (b *Builder) AddArgument(slot Slot) error {
	if err := b.parser.add(slot); err != nil {
		return &ConfigError{Command: b.name, Key: slot.Name, Err: err}
	}
	return nil
}

// AddConstraint appends a constraint. Constraints run in registration order.
func (b *Builder) AddConstraint(c Constraint) *Builder {
	b.constraints = append(b.constraints, c)
	return b
}

// RegisterChild adds a subcommand. If any of the child's keys is already
// taken on b, nothing is registered and ErrConfigurationConflict is returned.
func (b *Builder) RegisterChild(child *Builder) error {
	if child == nil || child == b {
		return &ConfigError{Command: b.name, Err: ErrInvalidCommand}
	}
	for _, key := range child.Keys() {
		if _, taken := b.keys[key]; taken {
			return &ConfigError{Command: b.name, Key: key, Err: ErrConfigurationConflict}
		}
	}
	for _, key := range child.Keys() {
		b.keys[key] = child
	}
	b.children = append(b.children, child)
	return nil
}

// Use adds body middleware. Middleware is inherited by subcommands and wraps
// theirs.
func (b *Builder) Use(mws ...Middleware) *Builder {
	b.middleware = append(b.middleware, mws...)
	return b
}

// Run sets the body. Without one, the command replies with its help text.
func (b *Builder) Run(body Body) *Builder {
	b.body = body
	return b
}

// MustArgs is AddArgument for each slot, panicking with the *ConfigError on
// failure. Intended for startup wiring.
func (b *Builder) MustArgs(slots ...Slot) *Builder {
	for _, s := range slots {
		if err := b.AddArgument(s); err != nil {
			panic(err)
		}
	}
	return b
}

// MustChildren is RegisterChild for each child, panicking on failure.
func (b *Builder) MustChildren(children ...*Builder) *Builder {
	for _, c := range children {
		if err := b.RegisterChild(c); err != nil {
			panic(err)
		}
	}
	return b
}

// Build freezes the declaration into an immutable tree and returns its
// root. Later changes to any builder do not affect the result.
func (b *Builder) Build() (*Node, error) {
	t := &Tree{}
	return t.freeze(b, -1, nil, map[*Builder]bool{})
}

// MustBuild is Build, panicking on error.
func (b *Builder) MustBuild() *Node {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}

// Tree indexes the nodes of one built command. Nodes refer to their parent
// by index into the tree, never by pointer.
type Tree struct {
	nodes []*Node
}

func (t *Tree) freeze(b *Builder, parent int, inherited []Middleware, visiting map[*Builder]bool) (*Node, error) {
	if b.err != nil {
		return nil, b.err
	}
	if visiting[b] {
		return nil, &ConfigError{Command: b.name, Err: fmt.Errorf("%w: registered inside itself", ErrInvalidCommand)}
	}
	visiting[b] = true
	defer delete(visiting, b)

	n := &Node{
		tree:        t,
		id:          len(t.nodes),
		parent:      parent,
		name:        b.name,
		description: b.description,
		permission:  b.permission,
		aliases:     append([]string(nil), b.aliases...),
		parser:      Parser{slots: b.parser.Slots()},
		constraints: append([]Constraint(nil), b.constraints...),
		children:    make(map[string]*Node),
	}
	t.nodes = append(t.nodes, n)

	mws := append(append([]Middleware(nil), inherited...), b.middleware...)
	body := b.body
	if body == nil {
		body = helpBody
	}
	n.body = Apply(body, mws...)

	for _, cb := range b.children {
		child, err := t.freeze(cb, n.id, mws, visiting)
		if err != nil {
			return nil, err
		}
		for _, key := range cb.Keys() {
			n.children[key] = child
		}
		n.order = append(n.order, child)
	}
	return n, nil
}

// Parent returns the parent of n, or false for a root.
func (t *Tree) Parent(n *Node) (*Node, bool) {
	if n.parent < 0 || n.parent >= len(t.nodes) {
		return nil, false
	}
	return t.nodes[n.parent], true
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }
