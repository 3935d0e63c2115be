package http

import (
	"time"

	"obsidianlist/internal/chat"
	"obsidianlist/internal/model"
)

type conversationResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func newConversationResp(conv model.Conversation) conversationResp {
	return conversationResp{
		ID:        conv.ID,
		Title:     conv.Title,
		CreatedAt: conv.CreatedAt.Format(time.RFC3339),
		UpdatedAt: conv.UpdatedAt.Format(time.RFC3339),
	}
}

type toolCallResp struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
	Result    map[string]any `json:"result"`
}

type messageResp struct {
	ID             string         `json:"id"`
	ConversationID string         `json:"conversation_id"`
	Role           string         `json:"role"`
	Content        string         `json:"content"`
	ToolCalls      []toolCallResp `json:"tool_calls,omitempty"`
	CreatedAt      string         `json:"created_at"`
}

func newMessageResp(msg model.Message) messageResp {
	resp := messageResp{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		Role:           msg.Role,
		Content:        msg.Content,
		CreatedAt:      msg.CreatedAt.Format(time.RFC3339),
	}
	for _, call := range msg.ToolCalls {
		resp.ToolCalls = append(resp.ToolCalls, toolCallResp{
			Tool:      call.Tool,
			Arguments: call.Arguments,
			Result:    call.Result,
		})
	}
	return resp
}

type sendMessageResp struct {
	Conversation conversationResp `json:"conversation"`
	UserMessage  messageResp      `json:"user_message"`
	Assistant    messageResp      `json:"assistant_message"`
}

func newSendMessageResp(output chat.SendMessageOutput) sendMessageResp {
	return sendMessageResp{
		Conversation: newConversationResp(output.Conversation),
		UserMessage:  newMessageResp(output.UserMessage),
		Assistant:    newMessageResp(output.AssistantMessage),
	}
}

type listConversationsResp struct {
	Conversations []conversationResp `json:"conversations"`
}

func newListConversationsResp(convs []model.Conversation) listConversationsResp {
	resp := listConversationsResp{Conversations: make([]conversationResp, 0, len(convs))}
	for _, conv := range convs {
		resp.Conversations = append(resp.Conversations, newConversationResp(conv))
	}
	return resp
}

type listMessagesResp struct {
	Conversation conversationResp `json:"conversation"`
	Messages     []messageResp    `json:"messages"`
	Total        int              `json:"total"`
}

func newListMessagesResp(output chat.ListMessagesOutput) listMessagesResp {
	resp := listMessagesResp{
		Conversation: newConversationResp(output.Conversation),
		Messages:     make([]messageResp, 0, len(output.Messages)),
		Total:        output.Total,
	}
	for _, msg := range output.Messages {
		resp.Messages = append(resp.Messages, newMessageResp(msg))
	}
	return resp
}
