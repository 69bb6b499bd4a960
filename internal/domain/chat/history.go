package chat

// NormalizeHistory converts every message but the last into provider turns.
// Providers require history to open on a user turn, so anything before the
// first user message is discarded; with no user message the history is empty.
func NormalizeHistory(messages []Message) []Turn {
	if len(messages) < 2 {
		return []Turn{}
	}
	prior := messages[:len(messages)-1]

	start := -1
	for i, m := range prior {
		if m.Role == RoleUser {
			start = i
			break
		}
	}
	if start < 0 {
		return []Turn{}
	}

	turns := make([]Turn, 0, len(prior)-start)
	for _, m := range prior[start:] {
		turns = append(turns, Turn{
			Role: providerRole(m.Role),
			Text: m.Content,
		})
	}
	return turns
}

// BuildConversation splits a transcript into normalized history and the
// prompt to answer, which is the content of the last message.
func BuildConversation(messages []Message) (Conversation, error) {
	if len(messages) == 0 {
		return Conversation{}, ErrEmptyConversation
	}
	return Conversation{
		History: NormalizeHistory(messages),
		Prompt:  messages[len(messages)-1].Content,
	}, nil
}

func providerRole(r Role) ProviderRole {
	if r == RoleAssistant {
		return ProviderRoleModel
	}
	return ProviderRoleUser
}
