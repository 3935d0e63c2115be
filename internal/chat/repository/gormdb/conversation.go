package gormdb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	repo "obsidianlist/internal/chat/repository"
	"obsidianlist/internal/model"
)

// CreateConversation starts a new conversation for a user.
func (r *implRepository) CreateConversation(ctx context.Context, opt repo.CreateConversationOptions) (model.Conversation, error) {
	conv := model.Conversation{
		ID:     uuid.NewString(),
		UserID: opt.UserID,
		Title:  opt.Title,
	}
	if err := r.db.WithContext(ctx).Create(&conv).Error; err != nil {
		r.l.Errorf(ctx, "chat/repository/gormdb.CreateConversation: %v", err)
		return model.Conversation{}, repo.ErrFailedToInsert
	}
	return conv, nil
}

// GetConversation retrieves a conversation by ID. Returns a zero-value
// Conversation (ID == "") when the row does not exist.
func (r *implRepository) GetConversation(ctx context.Context, id string) (model.Conversation, error) {
	var conv model.Conversation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Conversation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "chat/repository/gormdb.GetConversation: %v", err)
		return model.Conversation{}, repo.ErrFailedToGet
	}
	return conv, nil
}

// ListConversations returns a user's conversations, most recently updated
// first.
func (r *implRepository) ListConversations(ctx context.Context, userID string) ([]model.Conversation, error) {
	var convs []model.Conversation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&convs).Error
	if err != nil {
		r.l.Errorf(ctx, "chat/repository/gormdb.ListConversations: %v", err)
		return nil, repo.ErrFailedToList
	}
	return convs, nil
}
