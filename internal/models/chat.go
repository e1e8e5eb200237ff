package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat holds one conversation per session. Messages are append-only; clearing
// resets the list to empty without deleting the record or its resume text.
type Chat struct {
	ID         uuid.UUID                        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID  string                           `gorm:"type:text;uniqueIndex;not null" json:"session_id"`
	ResumeText string                           `gorm:"type:text;not null" json:"-"`
	Messages   datatypes.JSONSlice[ChatMessage] `json:"messages"`
	CreatedAt  time.Time                        `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time                        `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Chat) TableName() string {
	return "chats"
}
