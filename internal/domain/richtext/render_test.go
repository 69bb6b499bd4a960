package richtext

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBlocks_PlainText(t *testing.T) {
	blocks := RenderBlocks("Hello world")

	require.Len(t, blocks, 1)
	assert.Equal(t, Paragraph([]InlineSpan{Plain("Hello world")}), blocks[0])
}

func TestRenderBlocks_BoldItalic(t *testing.T) {
	blocks := RenderBlocks("This is **bold** and *italic*.")

	require.Len(t, blocks, 1)
	assert.Equal(t, BlockParagraph, blocks[0].Kind)
	assert.Equal(t, []InlineSpan{
		Plain("This is "),
		Bold("bold"),
		Plain(" and "),
		Italic("italic"),
		Plain("."),
	}, blocks[0].Spans)
}

func TestRenderBlocks_BlankLineDoesNotCloseList(t *testing.T) {
	blocks := RenderBlocks("* one\n* two\n\n* three")

	require.Len(t, blocks, 2)
	assert.Equal(t, Spacer(), blocks[0])
	assert.Equal(t, List([][]InlineSpan{
		{Plain("one")},
		{Plain("two")},
		{Plain("three")},
	}), blocks[1])
}

func TestRenderBlocks_Table(t *testing.T) {
	blocks := RenderBlocks("| A | B |\n|---|---|\n| 1 | 2 |")

	require.Len(t, blocks, 1)
	assert.Equal(t, BlockTable, blocks[0].Kind)
	assert.Equal(t, []string{"A", "B"}, blocks[0].Header)
	assert.Equal(t, [][]string{{"1", "2"}}, blocks[0].Rows)
}

func TestRenderBlocks_MalformedTableDropped(t *testing.T) {
	blocks := RenderBlocks("| A | B |\n|---|---|")

	for _, b := range blocks {
		assert.NotEqual(t, BlockTable, b.Kind)
	}
	assert.Empty(t, blocks)
}

func TestRenderBlocks_TableFlushedByFollowingLine(t *testing.T) {
	text := "| Paket | Harga |\n|---|---|\n| Basic | 1jt |\n| Pro | 3jt |\nSilakan pilih."
	blocks := RenderBlocks(text)

	require.Len(t, blocks, 2)
	assert.Equal(t, Table(
		[]string{"Paket", "Harga"},
		[][]string{{"Basic", "1jt"}, {"Pro", "3jt"}},
	), blocks[0])
	assert.Equal(t, Paragraph([]InlineSpan{Plain("Silakan pilih.")}), blocks[1])
}

func TestRenderBlocks_HeadingFlushesList(t *testing.T) {
	blocks := RenderBlocks("- a\n- b\n### **Skills**\ntext")

	require.Len(t, blocks, 3)
	assert.Equal(t, List([][]InlineSpan{{Plain("a")}, {Plain("b")}}), blocks[0])
	assert.Equal(t, Heading(3, []InlineSpan{Bold("Skills")}), blocks[1])
	assert.Equal(t, Paragraph([]InlineSpan{Plain("text")}), blocks[2])
}

func TestRenderBlocks_ParagraphFlushesList(t *testing.T) {
	blocks := RenderBlocks("* item\nafter")

	require.Len(t, blocks, 2)
	assert.Equal(t, BlockList, blocks[0].Kind)
	assert.Equal(t, BlockParagraph, blocks[1].Kind)
}

func TestRenderBlocks_ParagraphKeepsIndentation(t *testing.T) {
	blocks := RenderBlocks("   indented line")

	require.Len(t, blocks, 1)
	assert.Equal(t, []InlineSpan{Plain("   indented line")}, blocks[0].Spans)
}

func TestRenderBlocks_UnsupportedHeadingLevelsArePlainParagraphs(t *testing.T) {
	blocks := RenderBlocks("## Title\n#### Deep")

	require.Len(t, blocks, 2)
	assert.Equal(t, BlockParagraph, blocks[0].Kind)
	assert.Equal(t, BlockParagraph, blocks[1].Kind)
}

func TestRenderBlocks_TableThenListAtEnd(t *testing.T) {
	blocks := RenderBlocks("* x\n| h |\n|---|\n| v |")

	require.Len(t, blocks, 2)
	assert.Equal(t, BlockTable, blocks[0].Kind)
	assert.Equal(t, BlockList, blocks[1].Kind)
}

func TestRenderBlocks_NeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"|",
		"||\n||\n||",
		"***",
		"### ",
		"* ",
		"\n\n\n",
		"| a |\nplain\n| b |",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { RenderBlocks(in) }, in)
	}
}

func TestContentBlock_JSON(t *testing.T) {
	data, err := json.Marshal([]ContentBlock{
		Spacer(),
		Heading(3, []InlineSpan{Plain("Hi")}),
	})
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"kind":"spacer"},{"kind":"heading","level":3,"spans":[{"kind":"plain","text":"Hi"}]}]`,
		string(data))
}
