package cmd

import (
	"sort"
	"strings"
)

// Node is a built, immutable command.
type Node struct {
	tree   *Tree
	id     int
	parent int

	name        string
	description string
	permission  string
	aliases     []string
	parser      Parser
	constraints []Constraint
	children    map[string]*Node
	order       []*Node
	body        Body
}

func (n *Node) Name() string        { return n.name }
func (n *Node) Description() string { return n.description }
func (n *Node) Permission() string  { return n.permission }
func (n *Node) Aliases() []string   { return append([]string(nil), n.aliases...) }
func (n *Node) Slots() []Slot       { return n.parser.Slots() }

// Keys returns the name followed by the aliases.
func (n *Node) Keys() []string {
	return append([]string{n.name}, n.aliases...)
}

// Tree returns the tree n belongs to.
func (n *Node) Tree() *Tree { return n.tree }

// Parent returns the enclosing command, or false for a root.
func (n *Node) Parent() (*Node, bool) { return n.tree.Parent(n) }

// Child looks up a subcommand by name or alias.
func (n *Node) Child(key string) (*Node, bool) {
	c, ok := n.children[key]
	return c, ok
}

// Children returns the subcommands sorted by name.
func (n *Node) Children() []*Node {
	list := append([]*Node(nil), n.order...)
	sort.Slice(list, func(i, j int) bool {
		return list[i].name < list[j].name
	})
	return list
}

// Path returns the space-separated names from the root to n.
func (n *Node) Path() string {
	parent, ok := n.Parent()
	if !ok {
		return n.name
	}
	return parent.Path() + " " + n.name
}

// Parse runs n's argument parser over tokens without dispatching.
func (n *Node) Parse(tokens []string) (Args, []ErrorRecord) {
	return n.parser.Parse(tokens)
}

// Diagnostic renders rec against n's path and slots.
func (n *Node) Diagnostic(rec ErrorRecord) Text {
	return Diagnostic(n.Path(), n.parser.slots, rec)
}

// UsageParts returns one usage fragment per declared slot.
func (n *Node) UsageParts() []string {
	parts := make([]string, len(n.parser.slots))
	for i, s := range n.parser.slots {
		parts[i] = s.Usage()
	}
	return parts
}

// Usage returns the one-line usage, e.g. "/give <item:item> [amount:int]".
// A command without arguments but with subcommands lists them instead.
func (n *Node) Usage() string {
	parts := append([]string{"/" + n.Path()}, n.UsageParts()...)
	if len(n.parser.slots) == 0 && len(n.order) > 0 {
		names := make([]string, 0, len(n.order))
		for _, c := range n.Children() {
			names = append(names, c.name)
		}
		parts = append(parts, "<"+strings.Join(names, "|")+">")
	}
	return strings.Join(parts, " ")
}

// Help returns the usage line, description and subcommand usages.
func (n *Node) Help() Text {
	text := Text{{{Style: StyleHighlight, Text: "Usage: " + n.Usage()}}}
	if n.description != "" {
		text = append(text, Line{{Style: StylePlain, Text: n.description}})
	}
	if len(n.aliases) > 0 {
		text = append(text, Line{{Style: StylePlain, Text: "Aliases: " + strings.Join(n.aliases, ", ")}})
	}
	for _, c := range n.Children() {
		line := Line{{Style: StylePlain, Text: " - " + c.Usage()}}
		if c.description != "" {
			line = append(line, Segment{Style: StylePlain, Text: ": " + c.description})
		}
		text = append(text, line)
	}
	return text
}
