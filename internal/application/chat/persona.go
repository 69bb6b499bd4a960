package chat

import "strings"

// DefaultPersona introduces the assistant to the model. It is written in
// Indonesian, the language the assistant answers in.
const DefaultPersona = `Kamu adalah AI Assistant untuk Portofolio Dicky.
Tugasmu adalah menjawab pertanyaan pengunjung seputar pengalaman, proyek, dan keahlian Dicky.
Bersikaplah profesional, ramah, dan membantu. Gunakan Bahasa Indonesia.`

const contextPreamble = "Gunakan konteks berikut sebagai sumber kebenaran utama:"

// BuildSystemInstruction joins the persona and the portfolio context
func BuildSystemInstruction(persona, portfolioContext string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(persona))
	b.WriteString("\n\n")
	b.WriteString(contextPreamble)
	b.WriteString("\n")
	b.WriteString(portfolioContext)
	return b.String()
}
