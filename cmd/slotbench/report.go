package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func printResults(results []Result) {
	render := func(s lipgloss.Style, text string) string {
		if noColor {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n",
		render(headerStyle, fmt.Sprintf("%-20s %-10s %10s %8s %12s %10s",
			"WORKLOAD", "BACKEND", "OPS", "ROUNDS", "TOTAL", "PER OP")))
	for _, r := range results {
		fmt.Fprintf(&b, "%s %-10s %10d %8d %12s %10s\n",
			render(nameStyle, fmt.Sprintf("%-20s", r.Workload.Name)),
			r.Workload.Backend,
			r.Workload.Ops,
			r.Workload.Rounds,
			r.Total.Round(10*time.Microsecond),
			r.PerOp,
		)
	}
	fmt.Fprint(&b, render(dimStyle, "per-op cost includes list bookkeeping, not just the storage\n"))
	fmt.Fprint(os.Stdout, b.String())
}
