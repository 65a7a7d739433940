package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"lintcore/internal/driver"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List built-in rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
		entries := driver.Builtin().Entries()
		switch format {
		case "table":
			renderRulesTable(cmd.OutOrStdout(), entries, colorOn())
			return nil
		case "json":
			return renderRulesJSON(cmd.OutOrStdout(), entries)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	},
}

func init() {
	rulesCmd.Flags().String("format", "table", "output format (table|json)")
}

type ruleRow struct {
	Code string   `json:"code"`
	Tags []string `json:"tags"`
	Docs string   `json:"docs,omitempty"`
}

func renderRulesJSON(out io.Writer, entries []driver.Entry) error {
	rows := make([]ruleRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, ruleRow{Code: e.Code, Tags: e.Tags, Docs: e.Docs})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func renderRulesTable(out io.Writer, entries []driver.Entry, styled bool) {
	headers := [3]string{"CODE", "TAGS", "DESCRIPTION"}
	rows := make([][3]string, 0, len(entries))
	width := [2]int{lipgloss.Width(headers[0]), lipgloss.Width(headers[1])}
	for _, e := range entries {
		row := [3]string{e.Code, strings.Join(e.Tags, ","), e.Docs}
		width[0] = max(width[0], lipgloss.Width(row[0]))
		width[1] = max(width[1], lipgloss.Width(row[1]))
		rows = append(rows, row)
	}

	headStyle := lipgloss.NewStyle()
	codeStyle := lipgloss.NewStyle()
	tagStyle := lipgloss.NewStyle()
	if styled {
		headStyle = headStyle.Bold(true).Foreground(lipgloss.Color("7"))
		codeStyle = codeStyle.Foreground(lipgloss.Color("6"))
		tagStyle = tagStyle.Foreground(lipgloss.Color("8"))
	}
	cell := func(st lipgloss.Style, s string, w int) string {
		// ширина по видимым символам, без ANSI
		return st.Render(s) + strings.Repeat(" ", w-lipgloss.Width(s)+2)
	}

	fmt.Fprintln(out, strings.TrimRight(cell(headStyle, headers[0], width[0])+cell(headStyle, headers[1], width[1])+headStyle.Render(headers[2]), " "))
	for _, r := range rows {
		line := cell(codeStyle, r[0], width[0]) + cell(tagStyle, r[1], width[1]) + r[2]
		fmt.Fprintln(out, strings.TrimRight(line, " "))
	}
}
