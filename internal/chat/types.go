package chat

import "obsidianlist/internal/model"

// SendMessageInput is one user utterance. A blank ConversationID starts a new
// conversation titled after the message.
type SendMessageInput struct {
	ConversationID string
	Message        string
}

// SendMessageOutput carries the assistant's reply and both persisted entries.
type SendMessageOutput struct {
	Conversation     model.Conversation
	UserMessage      model.Message
	AssistantMessage model.Message
}

// ListMessagesInput pages through one conversation's log, oldest first.
type ListMessagesInput struct {
	ConversationID string
	Limit          int
	Offset         int
}

// ListMessagesOutput is one page of a conversation log.
type ListMessagesOutput struct {
	Conversation model.Conversation
	Messages     []model.Message
	Total        int
}
