package cmd

import (
	"strings"
	"testing"
)

func TestDiagnostic(t *testing.T) {
	give := []Slot{Required("item", itemType), Optional("amount", Integer)}
	tests := []struct {
		name  string
		path  string
		slots []Slot
		rec   ErrorRecord
		want  []string
	}{
		{
			name:  "invalid value",
			path:  "give",
			slots: give,
			rec:   ErrorRecord{Kind: InvalidArgValue, Tokens: []string{"lava"}},
			want: []string{
				"/give lava",
				"       ^",
				"Command expected argument 1 to be an item but a string was given.",
			},
		},
		{
			name:  "invalid value in the middle",
			path:  "give",
			slots: give,
			rec:   ErrorRecord{Kind: InvalidArgValue, SlotIndex: 1, TokenIndex: 1, Tokens: []string{"wood", "x"}},
			want: []string{
				"/give wood x",
				"          ^",
				"Command expected argument 2 to be an int but a string was given.",
			},
		},
		{
			name:  "given type is classified",
			path:  "give",
			slots: give,
			rec:   ErrorRecord{Kind: InvalidArgValue, Tokens: []string{"5"}},
			want: []string{
				"/give 5",
				"     ^",
				"Command expected argument 1 to be an item but an int was given.",
			},
		},
		{
			name:  "several candidate types",
			path:  "tp",
			slots: []Slot{Required("target", Integer, Boolean)},
			rec:   ErrorRecord{Kind: InvalidArgValue, Tokens: []string{"abc"}},
			want: []string{
				"/tp abc",
				"    ^",
				"Command expected argument 1 to be one of int, bool but a string was given.",
			},
		},
		{
			name:  "too many",
			path:  "give",
			slots: give,
			rec:   ErrorRecord{Kind: TooManyArguments, SlotIndex: 2, TokenIndex: 2, Tokens: []string{"wood", "5", "extra"}},
			want: []string{
				"/give wood 5 extra",
				"              ^",
				"Command expected 2 arguments, 3 given.",
			},
		},
		{
			name:  "insufficient with nothing given",
			path:  "give",
			slots: give,
			rec:   ErrorRecord{Kind: InsufficientArguments},
			want: []string{
				"/give <item:item> [amount:int]",
				"                 ^",
				"Command expected 2 arguments, 0 given.",
			},
		},
		{
			name:  "rejected",
			path:  "roll",
			slots: []Slot{Optional("sides", IntRange(2, 100))},
			rec:   ErrorRecord{Kind: InvalidArguments, Tokens: []string{"1000"}, Detail: "must be between 2 and 100"},
			want: []string{
				"/roll 1000",
				"       ^",
				"Invalid argument 1: must be between 2 and 100.",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diagnostic(tt.path, tt.slots, tt.rec).String()
			if want := strings.Join(tt.want, "\n"); got != want {
				t.Errorf("got:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func TestDiagnosticHighlightsOffendingToken(t *testing.T) {
	text := Diagnostic("give", []Slot{Required("item", itemType)}, ErrorRecord{
		Kind:       InvalidArgValue,
		Tokens:     []string{"lava"},
		TokenIndex: 0,
	})
	if len(text) != 3 {
		t.Fatalf("got %d lines, want 3", len(text))
	}
	var highlighted []string
	for _, seg := range text[0] {
		if seg.Style == StyleHighlight {
			highlighted = append(highlighted, seg.Text)
		}
	}
	if len(highlighted) != 1 || highlighted[0] != "lava" {
		t.Errorf("highlighted = %v", highlighted)
	}
	if text[2][0].Style != StyleError {
		t.Error("message line should be error-styled")
	}
}

func TestDiagnosticCountsArgumentsAfterSpan(t *testing.T) {
	tests := []struct {
		name  string
		slots []Slot
		line  []string
		want  []string
	}{
		{
			name:  "insufficient",
			slots: []Slot{Required("name", String), Required("pos", Position), Required("n", Integer)},
			line:  []string{"home", "1", "2", "3"},
			want: []string{
				"/mark home 1 2 3 <n:int>",
				"                   ^",
				"Command expected 3 arguments, 2 given.",
			},
		},
		{
			name:  "too many",
			slots: []Slot{Required("name", String), Required("pos", Position)},
			line:  []string{"home", "1", "2", "3", "extra"},
			want: []string{
				"/mark home 1 2 3 extra",
				"                  ^",
				"Command expected 2 arguments, 3 given.",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := mustParser(t, tt.slots...).Parse(tt.line)
			if len(errs) != 1 {
				t.Fatalf("errors = %+v", errs)
			}
			got := Diagnostic("mark", tt.slots, errs[0]).String()
			if want := strings.Join(tt.want, "\n"); got != want {
				t.Errorf("got:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}
