// Package render turns styled command output into host markup.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keshon/commando/pkg/cmd"
)

// Func renders text for one host.
type Func func(cmd.Text) string

// Plain drops all styling.
func Plain(text cmd.Text) string { return text.String() }

const (
	ansiReset     = "\x1b[0m"
	ansiRed       = "\x1b[31m"
	ansiBoldGold  = "\x1b[1;33m"
	codeFence     = "```"
	escapedFence  = "`\u200b``"
	discordOpener = codeFence + "ansi\n"
)

// Discord wraps text in an ansi code block so the monospace layout keeps
// carets aligned under the offending argument.
func Discord(text cmd.Text) string {
	var b strings.Builder
	b.WriteString(discordOpener)
	for i, line := range text {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, seg := range line {
			s := strings.ReplaceAll(seg.Text, codeFence, escapedFence)
			switch seg.Style {
			case cmd.StyleError:
				b.WriteString(ansiRed + s + ansiReset)
			case cmd.StyleHighlight:
				b.WriteString(ansiBoldGold + s + ansiReset)
			default:
				b.WriteString(s)
			}
		}
	}
	b.WriteString("\n" + codeFence)
	return b.String()
}

// Console renders for a terminal attached to w. Colors are dropped when w
// is not a TTY.
func Console(w io.Writer) Func {
	r := lipgloss.NewRenderer(w)
	styles := map[cmd.Style]lipgloss.Style{
		cmd.StyleError:     r.NewStyle().Foreground(lipgloss.Color("9")),
		cmd.StyleHighlight: r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	}
	return func(text cmd.Text) string {
		lines := make([]string, len(text))
		for i, line := range text {
			var b strings.Builder
			for _, seg := range line {
				if st, ok := styles[seg.Style]; ok && seg.Text != "" {
					b.WriteString(st.Render(seg.Text))
					continue
				}
				b.WriteString(seg.Text)
			}
			lines[i] = b.String()
		}
		return strings.Join(lines, "\n")
	}
}
