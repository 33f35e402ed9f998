package cmd

import "strings"

// Slot is one declared positional argument.
type Slot struct {
	Name     string
	Optional bool
	// Variadic slots collect every remaining token into a []any.
	Variadic bool
	// Types are tried in order; the first match wins and is never revisited.
	Types []Type
}

// Required declares a slot that must be present.
func Required(name string, types ...Type) Slot {
	return Slot{Name: name, Types: types}
}

// Optional declares a slot that may be omitted.
func Optional(name string, types ...Type) Slot {
	return Slot{Name: name, Optional: true, Types: types}
}

// Variadic declares an optional terminal slot taking all remaining tokens.
func Variadic(name string, types ...Type) Slot {
	return Slot{Name: name, Optional: true, Variadic: true, Types: types}
}

// terminal reports whether nothing may be declared after s.
func (s Slot) terminal() bool {
	if s.Variadic {
		return true
	}
	for _, t := range s.Types {
		if spanOf(t) == SpanRest {
			return true
		}
	}
	return false
}

// TypeNames returns the names of the accepted types in declared order.
func (s Slot) TypeNames() []string {
	names := make([]string, len(s.Types))
	for i, t := range s.Types {
		names[i] = t.Name()
	}
	return names
}

// Usage renders the slot as <name:type> or [name:type].
func (s Slot) Usage() string {
	var b strings.Builder
	open, closing := "<", ">"
	if s.Optional {
		open, closing = "[", "]"
	}
	b.WriteString(open)
	b.WriteString(s.Name)
	b.WriteByte(':')
	b.WriteString(strings.ReplaceAll(strings.Join(s.TypeNames(), "|"), " ", "_"))
	if s.Variadic {
		b.WriteString("...")
	}
	b.WriteString(closing)
	return b.String()
}

// consume resolves one logical argument starting at cursor. On failure it
// returns the index of the token that could not be matched.
func (s Slot) consume(tokens []Token, cursor int) (value any, next int, failed int, err error) {
	if s.Variadic {
		values := make([]any, 0, len(tokens)-cursor)
		for cursor < len(tokens) {
			v, n, err := s.consumeOne(tokens, cursor)
			if err != nil {
				return nil, cursor, cursor, err
			}
			values = append(values, v)
			cursor = n
		}
		return values, cursor, -1, nil
	}
	v, n, err := s.consumeOne(tokens, cursor)
	if err != nil {
		return nil, cursor, cursor, err
	}
	return v, n, -1, nil
}

func (s Slot) consumeOne(tokens []Token, cursor int) (any, int, error) {
	remaining := len(tokens) - cursor
	for _, t := range s.Types {
		span := spanOf(t)
		if span == SpanRest {
			span = remaining
		}
		if span < 1 || span > remaining {
			continue
		}
		tok := tokens[cursor]
		if span > 1 {
			tok = Classify(joinTokens(tokens[cursor : cursor+span]))
		}
		if !t.Match(tok) {
			continue
		}
		v, err := t.Parse(tok)
		if err != nil {
			return nil, cursor, err
		}
		return v, cursor + span, nil
	}
	return nil, cursor, errNoMatch
}
