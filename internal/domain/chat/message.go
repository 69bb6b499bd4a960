// Package chat holds the conversation model exchanged between the portfolio
// chat widget and a generative-AI provider.
package chat

// Role identifies the author of a message in a widget transcript
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ProviderRole is the role label a provider expects on history turns
type ProviderRole string

const (
	ProviderRoleUser  ProviderRole = "user"
	ProviderRoleModel ProviderRole = "model"
)

// Message is one entry of the transcript sent by the client.
// The transcript is supplied in full on every request and never stored.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Turn is a prior conversation turn in provider shape: a role and a single
// text part.
type Turn struct {
	Role ProviderRole
	Text string
}

// Conversation is the provider-ready form of a transcript
type Conversation struct {
	History []Turn
	Prompt  string
}
