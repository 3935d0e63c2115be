package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"obsidianlist/internal/chat"
)

var errMissingID = errors.New("conversation id is required")

type sendMessageReq struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message" binding:"required"`
}

func (r sendMessageReq) toInput() chat.SendMessageInput {
	return chat.SendMessageInput{
		ConversationID: r.ConversationID,
		Message:        r.Message,
	}
}

func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sendMessageReq{}, err
	}
	return req, nil
}

type listMessagesReq struct {
	ConversationID string
	Limit          int `form:"limit"`
	Offset         int `form:"offset"`
}

func (r listMessagesReq) toInput() chat.ListMessagesInput {
	return chat.ListMessagesInput{
		ConversationID: r.ConversationID,
		Limit:          r.Limit,
		Offset:         r.Offset,
	}
}

func (h *handler) processListMessagesReq(c *gin.Context) (listMessagesReq, error) {
	var req listMessagesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return listMessagesReq{}, err
	}
	req.ConversationID = c.Param("id")
	if req.ConversationID == "" {
		return listMessagesReq{}, errMissingID
	}
	return req, nil
}
