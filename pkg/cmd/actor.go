package cmd

import (
	"fmt"
	"strings"
)

// Actor is whoever issued a command. Hosts supply the implementation.
type Actor interface {
	ID() string
	Name() string
	HasPermission(key string) bool
}

// Sink delivers text to an actor. Rendering of styles is up to the host.
type Sink interface {
	Send(actor Actor, text Text)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(actor Actor, text Text)

func (f SinkFunc) Send(actor Actor, text Text) { f(actor, text) }

// Style tags a segment semantically.
type Style uint8

const (
	StylePlain Style = iota
	StyleError
	StyleHighlight
)

// Segment is a run of text sharing one style.
type Segment struct {
	Style Style
	Text  string
}

// Line is one output line.
type Line []Segment

// Text is a multi-line message.
type Text []Line

func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

func (t Text) String() string {
	lines := make([]string, len(t))
	for i, l := range t {
		lines[i] = l.String()
	}
	return strings.Join(lines, "\n")
}

// Plain builds a single unstyled line.
func Plain(format string, args ...any) Text {
	return Text{{{Style: StylePlain, Text: fmt.Sprintf(format, args...)}}}
}

// Error builds a single error-styled line.
func Error(format string, args ...any) Text {
	return Text{{{Style: StyleError, Text: fmt.Sprintf(format, args...)}}}
}
