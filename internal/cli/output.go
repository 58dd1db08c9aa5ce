package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/pdrpinto/gridpath"
)

var symbolStyles = map[byte]lipgloss.Style{
	gridpath.SymbolBlocked: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	gridpath.SymbolPath:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	gridpath.SymbolStart:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	gridpath.SymbolGoal:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// renderMap draws the map like gridpath.Render, optionally styling symbols.
func renderMap(m *gridpath.Map, path gridpath.Path, color bool) string {
	if !color {
		return gridpath.Render(m.Grid, path, m.Start, m.Goal)
	}
	var b strings.Builder
	for _, row := range gridpath.Canvas(m.Grid, path, m.Start, m.Goal) {
		cells := make([]string, len(row))
		for i, symbol := range row {
			cells[i] = string(symbol)
			if style, ok := symbolStyles[symbol]; ok {
				cells[i] = style.Render(cells[i])
			}
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	return table
}
