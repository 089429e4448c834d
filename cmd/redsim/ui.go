package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/redstone/constraint"
	"github.com/katalvlaran/redstone/core"
)

// Palette — muted, dark-terminal friendly.
var (
	purple = lipgloss.Color("99")
	green  = lipgloss.Color("76")
	red    = lipgloss.Color("204")
	dim    = lipgloss.Color("243")
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(purple)
	onStyle     = lipgloss.NewStyle().Foreground(green)
	offStyle    = lipgloss.NewStyle().Foreground(red)
	mutedStyle  = lipgloss.NewStyle().Foreground(dim)
	headerStyle = lipgloss.NewStyle().Bold(true)
)

func accent(s string) string   { return accentStyle.Render(s) }
func muted(s string) string    { return mutedStyle.Render(s) }
func errorMsg(s string) string { return offStyle.Render("✗") + " " + s }

// renderStates formats one row per node in creation order: kind,
// name, power, on, forced. Rows are styled whole, after padding, so
// the escape codes never skew the columns.
func renderStates(nodes []core.Redstone) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-10s %-28s %6s %5s %7s", "KIND", "NAME", "POWER", "ON", "FORCED")))
	for _, n := range nodes {
		st := n.RedState()
		state := "off"
		if st.IsOn() {
			state = "on"
		}
		row := fmt.Sprintf("%-10s %-28s %6d %5s %7t",
			n.Kind(), n.Name(), st.Power(), state, st.IsForced())
		if st.IsOn() {
			row = onStyle.Render(row)
		} else {
			row = mutedStyle.Render(row)
		}
		b.WriteString("\n" + row)
	}
	return b.String()
}

// renderEvents formats the solver's diagnostic trace, one event per
// line.
func renderEvents(events []constraint.Event) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("EVENTS"))
	for _, e := range events {
		b.WriteString("\n" + muted(e.String()))
	}
	return b.String()
}
