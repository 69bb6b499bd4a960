// Package richtext turns the lightweight markup produced by the chat
// assistant into typed content blocks ready for display.
package richtext

// SpanKind tags an InlineSpan
type SpanKind string

const (
	SpanPlain  SpanKind = "plain"
	SpanBold   SpanKind = "bold"
	SpanItalic SpanKind = "italic"
)

// InlineSpan is one formatted fragment of a line
type InlineSpan struct {
	Kind SpanKind `json:"kind"`
	Text string   `json:"text"`
}

// Plain creates a plain text span
func Plain(text string) InlineSpan { return InlineSpan{Kind: SpanPlain, Text: text} }

// Bold creates a bold span
func Bold(text string) InlineSpan { return InlineSpan{Kind: SpanBold, Text: text} }

// Italic creates an italic span
func Italic(text string) InlineSpan { return InlineSpan{Kind: SpanItalic, Text: text} }

// BlockKind tags a ContentBlock
type BlockKind string

const (
	BlockParagraph BlockKind = "paragraph"
	BlockHeading   BlockKind = "heading"
	BlockList      BlockKind = "list"
	BlockTable     BlockKind = "table"
	BlockSpacer    BlockKind = "spacer"
)

// ContentBlock is a tagged variant. Which fields are set depends on Kind:
//
//	paragraph: Spans
//	heading:   Level, Spans
//	list:      Items
//	table:     Header, Rows
//	spacer:    none
type ContentBlock struct {
	Kind   BlockKind      `json:"kind"`
	Level  int            `json:"level,omitempty"`
	Spans  []InlineSpan   `json:"spans,omitempty"`
	Items  [][]InlineSpan `json:"items,omitempty"`
	Header []string       `json:"header,omitempty"`
	Rows   [][]string     `json:"rows,omitempty"`
}

// Paragraph creates a paragraph block
func Paragraph(spans []InlineSpan) ContentBlock {
	return ContentBlock{Kind: BlockParagraph, Spans: spans}
}

// Heading creates a heading block of the given level
func Heading(level int, spans []InlineSpan) ContentBlock {
	return ContentBlock{Kind: BlockHeading, Level: level, Spans: spans}
}

// List creates an unordered list block
func List(items [][]InlineSpan) ContentBlock {
	return ContentBlock{Kind: BlockList, Items: items}
}

// Table creates a table block
func Table(header []string, rows [][]string) ContentBlock {
	return ContentBlock{Kind: BlockTable, Header: header, Rows: rows}
}

// Spacer creates a blank-line placeholder
func Spacer() ContentBlock {
	return ContentBlock{Kind: BlockSpacer}
}
