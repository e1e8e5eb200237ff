package repositories

import (
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"atscribe/resume-analyzer/internal/models"
)

type ChatRepository interface {
	UpsertBySessionID(chat *models.Chat) error
	FindBySessionID(sessionID string) (*models.Chat, error)
	SaveMessages(sessionID string, messages []models.ChatMessage) error
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// UpsertBySessionID implements ChatRepository. Re-initializing a session
// replaces the resume text and wipes the message history.
func (r *chatRepository) UpsertBySessionID(chat *models.Chat) error {
	var existing models.Chat
	err := r.db.Where("session_id = ?", chat.SessionID).First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			if err := r.db.Create(chat).Error; err != nil {
				return fmt.Errorf("failed to create chat: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to look up chat: %w", err)
	}

	chat.ID = existing.ID
	chat.CreatedAt = existing.CreatedAt
	updates := map[string]interface{}{
		"resume_text": chat.ResumeText,
		"messages":    chat.Messages,
	}
	if err := r.db.Model(&existing).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update chat: %w", err)
	}

	return nil
}

// FindBySessionID implements ChatRepository.
func (r *chatRepository) FindBySessionID(sessionID string) (*models.Chat, error) {
	var chat models.Chat
	if err := r.db.Where("session_id = ?", sessionID).First(&chat).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("chat not found")
		}
		return nil, fmt.Errorf("failed to find chat: %w", err)
	}

	return &chat, nil
}

// SaveMessages implements ChatRepository.
func (r *chatRepository) SaveMessages(sessionID string, messages []models.ChatMessage) error {
	result := r.db.Model(&models.Chat{}).
		Where("session_id = ?", sessionID).
		Update("messages", datatypes.NewJSONSlice(messages))

	if result.Error != nil {
		return fmt.Errorf("failed to save chat messages: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("chat not found")
	}

	return nil
}
