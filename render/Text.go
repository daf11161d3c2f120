package render

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/gridworlds/environment/gridworld"
)

// Symbols used to draw each kind of cell as text
const (
	AgentSymbol    = "A"
	OpenSymbol     = "."
	TerminalSymbol = "T"
	GoalSymbol     = "G"
	IllegalSymbol  = "#"
	HazardSymbol   = "x"
)

// Text draws v as one line of text per row followed by the last action
// taken. If colors is true, the cells are coloured with ANSI escape
// codes.
func Text(v Viewer, colors bool) string {
	au := aurora.NewAurora(colors)
	rows, cols := v.Dims()
	pos := v.Position()

	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			if pos.Row == r && pos.Col == c {
				fmt.Fprint(&b, au.Bold(au.Cyan(AgentSymbol)))
				continue
			}

			switch v.Kind(r, c) {
			case gridworld.Terminal:
				fmt.Fprint(&b, au.Red(TerminalSymbol))
			case gridworld.Goal:
				fmt.Fprint(&b, au.Green(GoalSymbol))
			case gridworld.Illegal:
				fmt.Fprint(&b, au.Gray(12, IllegalSymbol))
			case gridworld.Hazard:
				fmt.Fprint(&b, au.Yellow(HazardSymbol))
			default:
				fmt.Fprint(&b, OpenSymbol)
			}
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "Last action: %v\n", gridworld.ActionName(v.LastAction()))
	return b.String()
}
