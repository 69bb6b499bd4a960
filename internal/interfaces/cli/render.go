package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dicky/portfolio/internal/domain/richtext"
	"github.com/spf13/cobra"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
	italicStyle  = lipgloss.NewStyle().Italic(true)
	bulletStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

func newRenderCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Preview assistant markup as the chat widget shows it",
		Long: `Render assistant markup (### headings, * lists, **bold**, *italic*, pipe
tables) for the terminal. Reads the file argument, or stdin when omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			blocks := richtext.RenderBlocks(text)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(blocks)
			}
			_, err = io.WriteString(out, renderTerminal(blocks))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the content blocks as JSON")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// renderTerminal lays out content blocks for a terminal
func renderTerminal(blocks []richtext.ContentBlock) string {
	var b strings.Builder
	for _, block := range blocks {
		switch block.Kind {
		case richtext.BlockHeading:
			b.WriteString(headingStyle.Render(spansText(block.Spans)))
			b.WriteString("\n")
		case richtext.BlockParagraph:
			b.WriteString(spansText(block.Spans))
			b.WriteString("\n")
		case richtext.BlockList:
			for _, item := range block.Items {
				b.WriteString(bulletStyle.Render("  •"))
				b.WriteString(" ")
				b.WriteString(spansText(item))
				b.WriteString("\n")
			}
		case richtext.BlockTable:
			b.WriteString(renderTable(block.Header, block.Rows))
		case richtext.BlockSpacer:
			b.WriteString("\n")
		}
	}
	return b.String()
}

func spansText(spans []richtext.InlineSpan) string {
	var b strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case richtext.SpanBold:
			b.WriteString(boldStyle.Render(s.Text))
		case richtext.SpanItalic:
			b.WriteString(italicStyle.Render(s.Text))
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	line := func(cells []string, style *lipgloss.Style) {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			padded := cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if style != nil {
				padded = style.Render(padded)
			}
			parts[i] = padded
		}
		b.WriteString("  " + strings.Join(parts, " │ ") + "\n")
	}
	line(header, &headerStyle)
	for _, row := range rows {
		line(row, nil)
	}
	return b.String()
}
