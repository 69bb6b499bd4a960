package richtext

import "strings"

const (
	headingPrefix = "### "
	headingLevel  = 3
)

// renderer carries the state of one forward pass over the input lines
type renderer struct {
	blocks    []ContentBlock
	listItems [][]InlineSpan
	tableRows []string
}

// RenderBlocks converts assistant markup into content blocks.
//
// Lines whose trimmed form starts with "|" are collected as a table and
// emitted when the first non-table line arrives. "### " starts a heading,
// "* " and "- " start list items, blank lines become spacers and anything
// else is a paragraph. Blank lines do not close an open list; only headings,
// paragraphs and the end of input do.
//
// RenderBlocks never fails: unrecognized markup is rendered as paragraphs.
func RenderBlocks(text string) []ContentBlock {
	r := &renderer{blocks: []ContentBlock{}}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "|") {
			r.tableRows = append(r.tableRows, trimmed)
			continue
		}
		r.flushTable()

		switch {
		case strings.HasPrefix(trimmed, headingPrefix):
			r.flushList()
			content := strings.Replace(trimmed, headingPrefix, "", 1)
			r.blocks = append(r.blocks, Heading(headingLevel, ParseFormatting(content)))
		case strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "- "):
			r.listItems = append(r.listItems, ParseFormatting(trimmed[2:]))
		case trimmed == "":
			r.blocks = append(r.blocks, Spacer())
		default:
			r.flushList()
			r.blocks = append(r.blocks, Paragraph(ParseFormatting(line)))
		}
	}

	r.flushTable()
	r.flushList()
	return r.blocks
}

func (r *renderer) flushList() {
	if len(r.listItems) == 0 {
		return
	}
	r.blocks = append(r.blocks, List(r.listItems))
	r.listItems = nil
}

// flushTable emits the buffered table. Header, separator and at least one
// data row are required; anything shorter is dropped.
func (r *renderer) flushTable() {
	if len(r.tableRows) == 0 {
		return
	}
	rows := r.tableRows
	r.tableRows = nil

	if len(rows) < 3 {
		return
	}

	data := make([][]string, 0, len(rows)-2)
	for _, row := range rows[2:] {
		data = append(data, splitCells(row))
	}
	r.blocks = append(r.blocks, Table(splitCells(rows[0]), data))
}

func splitCells(row string) []string {
	parts := strings.Split(row, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}
