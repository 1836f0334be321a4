package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cloch-fhada/internal/core"
	"github.com/vovakirdan/cloch-fhada/internal/games/cloch"
	"github.com/vovakirdan/cloch-fhada/internal/platform/tui"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Show the stone legend",
	Long:  `Shows the seven stones with their Celtic names, mottos and shapes.`,
	Args:  cobra.NoArgs,
	Run:   runPieces,
}

func runPieces(_ *cobra.Command, _ []string) {
	title := tui.StyleFor(core.ColorAmber).Render("Sacred Stones")
	fmt.Println(title)
	fmt.Println()
	fmt.Println(piecesTable())
	fmt.Println()
	fmt.Println("Run 'clochfhada play' to play.")
}

// piecesTable renders the catalog as a bordered table.
func piecesTable() string {
	columns := []table.Column{
		{Title: "Key", Width: 3},
		{Title: "Name", Width: 10},
		{Title: "Motto", Width: 18},
		{Title: "Color", Width: 8},
		{Title: "Shape", Width: 9},
	}

	rows := make([]table.Row, 0, len(cloch.Kinds))
	for _, k := range cloch.Kinds {
		info := k.Info()
		rows = append(rows, table.Row{
			k.String(),
			info.Name,
			info.Motto,
			info.Color.String(),
			shapeText(k.Shape()),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2), // Header plus its bottom border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// No cursor outside an interactive program.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(t.View())
}

// shapeText writes a shape on one line, rows separated by '/'.
func shapeText(sh cloch.Shape) string {
	rows := make([]string, sh.Rows())
	for r := range sh.Rows() {
		var b strings.Builder
		for c := range sh.Cols() {
			if sh.Filled(r, c) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[r] = b.String()
	}
	return strings.Join(rows, "/")
}
