package gormdb

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	repo "obsidianlist/internal/chat/repository"
	"obsidianlist/internal/model"
)

// RecentMessages returns the newest limit messages of a conversation,
// reordered oldest first for replay.
func (r *implRepository) RecentMessages(ctx context.Context, conversationID string, limit int) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		r.l.Errorf(ctx, "chat/repository/gormdb.RecentMessages: %v", err)
		return nil, repo.ErrFailedToList
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// ListMessages returns one page of a conversation log, oldest first, plus the
// total count.
func (r *implRepository) ListMessages(ctx context.Context, opt repo.ListMessagesOptions) ([]model.Message, int, error) {
	query := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("conversation_id = ?", opt.ConversationID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "chat/repository/gormdb.ListMessages: %v", err)
		return nil, 0, repo.ErrFailedToList
	}

	var messages []model.Message
	err := query.
		Order("created_at ASC").
		Limit(opt.Limit).
		Offset(opt.Offset).
		Find(&messages).Error
	if err != nil {
		r.l.Errorf(ctx, "chat/repository/gormdb.ListMessages: %v", err)
		return nil, 0, repo.ErrFailedToList
	}
	return messages, int(total), nil
}

// AppendExchange persists the user message and the assistant reply in one
// transaction and touches the conversation's updated_at. Nothing is written
// when any step fails, so a failed exchange leaves no partial log.
func (r *implRepository) AppendExchange(ctx context.Context, opt repo.AppendExchangeOptions) (repo.AppendExchangeResult, error) {
	userMsg := model.Message{
		ID:             uuid.NewString(),
		ConversationID: opt.ConversationID,
		UserID:         opt.UserID,
		Role:           model.RoleUser,
		Content:        opt.UserContent,
	}
	assistantMsg := model.Message{
		ID:             uuid.NewString(),
		ConversationID: opt.ConversationID,
		UserID:         opt.UserID,
		Role:           model.RoleAssistant,
		Content:        opt.ReplyContent,
		ToolCalls:      opt.ToolCalls,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&userMsg).Error; err != nil {
			return err
		}
		if err := tx.Create(&assistantMsg).Error; err != nil {
			return err
		}
		return tx.Model(&model.Conversation{}).
			Where("id = ?", opt.ConversationID).
			Update("updated_at", assistantMsg.CreatedAt).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "chat/repository/gormdb.AppendExchange: %v", err)
		return repo.AppendExchangeResult{}, repo.ErrFailedToInsert
	}

	return repo.AppendExchangeResult{UserMessage: userMsg, AssistantMessage: assistantMsg}, nil
}
