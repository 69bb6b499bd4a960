package richtext

import (
	"regexp"
	"strings"
)

// emphasisPattern matches **bold** or *italic* tokens, shortest first.
// Tokens do not nest.
var emphasisPattern = regexp.MustCompile(`(\*\*.*?\*\*|\*.*?\*)`)

// ParseFormatting splits a line into plain, bold and italic spans in order.
func ParseFormatting(line string) []InlineSpan {
	spans := make([]InlineSpan, 0, 1)
	last := 0
	for _, loc := range emphasisPattern.FindAllStringIndex(line, -1) {
		if loc[0] > last {
			spans = append(spans, Plain(line[last:loc[0]]))
		}
		spans = append(spans, emphasisSpan(line[loc[0]:loc[1]]))
		last = loc[1]
	}
	if last < len(line) {
		spans = append(spans, Plain(line[last:]))
	}
	return spans
}

func emphasisSpan(token string) InlineSpan {
	if strings.HasPrefix(token, "**") && strings.HasSuffix(token, "**") {
		if len(token) < 4 {
			return Bold("")
		}
		return Bold(token[2 : len(token)-2])
	}
	return Italic(token[1 : len(token)-1])
}
