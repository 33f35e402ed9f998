package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/keshon/commando/pkg/cmd"
)

const (
	maxDice  = 100
	maxSides = 1000
)

func rollCommand(deps Deps) *cmd.Builder {
	return deps.command("roll", "Roll dice, e.g. /roll 20 2 rolls two d20.", "dice").
		MustArgs(
			cmd.Optional("sides", cmd.IntRange(2, maxSides)),
			cmd.Optional("count", cmd.IntRange(1, maxDice)),
		).
		Run(func(_ context.Context, inv *cmd.Invocation) error {
			sides := inv.Args.Int("sides", 6)
			count := inv.Args.Int("count", 1)
			inv.Replyf("🎲 %s", rollDice(deps.Intn, count, sides))
			return nil
		})
}

// rollDice renders e.g. "2d6: 3, 5 (total 8)".
func rollDice(intn func(int) int, count, sides int) string {
	rolls := make([]string, count)
	total := 0
	for i := range rolls {
		r := intn(sides) + 1
		total += r
		rolls[i] = strconv.Itoa(r)
	}
	return strconv.Itoa(count) + "d" + strconv.Itoa(sides) + ": " +
		strings.Join(rolls, ", ") + " (total " + strconv.Itoa(total) + ")"
}
