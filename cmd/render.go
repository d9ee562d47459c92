package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"acexspf/internal/acestream"
	"acexspf/internal/category"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func styledTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

// writeLinks prints links as a styled table, or tab-separated when styled
// is false.
func writeLinks(w io.Writer, links []acestream.Link, styled bool) error {
	if styled {
		rows := make([][]string, len(links))
		for i, l := range links {
			rows[i] = []string{strconv.Itoa(i + 1), l.Name, acestream.URI(l.ID)}
		}
		_, err := fmt.Fprintln(w, styledTable([]string{"#", "Name", "Location"}, rows))
		return err
	}

	for _, l := range links {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", l.Name, acestream.URI(l.ID)); err != nil {
			return err
		}
	}
	return nil
}

func writeCounts(w io.Writer, counts []category.Count, styled bool) error {
	if styled {
		rows := make([][]string, len(counts))
		for i, c := range counts {
			rows[i] = []string{c.Label, strconv.Itoa(c.Count)}
		}
		_, err := fmt.Fprintln(w, styledTable([]string{"Category", "Channels"}, rows))
		return err
	}

	for _, c := range counts {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", c.Label, c.Count); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
