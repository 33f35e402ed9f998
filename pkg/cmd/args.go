package cmd

import "time"

// Args holds parsed argument values keyed by slot name, in declaration
// order. Omitted optional slots are absent rather than zero.
type Args struct {
	names  []string
	values map[string]any
}

func (a *Args) set(name string, value any) {
	if a.values == nil {
		a.values = make(map[string]any)
	}
	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}
	a.values[name] = value
}

// Len returns the number of resolved slots.
func (a Args) Len() int { return len(a.names) }

// Names returns the resolved slot names in declaration order.
func (a Args) Names() []string { return append([]string(nil), a.names...) }

// Has reports whether name was resolved.
func (a Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Get returns the raw value of name.
func (a Args) Get(name string) (any, bool) {
	v, ok := a.values[name]
	return v, ok
}

func (a Args) String(name, def string) string {
	if v, ok := a.values[name].(string); ok {
		return v
	}
	return def
}

func (a Args) Int(name string, def int) int {
	if v, ok := a.values[name].(int); ok {
		return v
	}
	return def
}

func (a Args) Float(name string, def float64) float64 {
	switch v := a.values[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

func (a Args) Bool(name string, def bool) bool {
	if v, ok := a.values[name].(bool); ok {
		return v
	}
	return def
}

func (a Args) Duration(name string, def time.Duration) time.Duration {
	if v, ok := a.values[name].(time.Duration); ok {
		return v
	}
	return def
}

// List returns the values of a variadic slot.
func (a Args) List(name string) []any {
	v, _ := a.values[name].([]any)
	return v
}
