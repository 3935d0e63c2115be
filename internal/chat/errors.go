package chat

import "errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrEmptyMessage         = errors.New("message must not be empty")
)
