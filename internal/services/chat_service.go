package services

import (
	"context"
	"fmt"
	"log"

	"gorm.io/datatypes"

	"atscribe/resume-analyzer/internal/models"
	"atscribe/resume-analyzer/internal/repositories"
)

// chatContextWindow bounds how many turns reach the provider per message,
// counting the new user turn. Older turns stay persisted, they just fall out
// of the prompt.
const chatContextWindow = 10

type ChatService interface {
	InitChat(sessionID, resumeText string) error
	SendMessage(ctx context.Context, sessionID, message string) (string, []models.ChatMessage, error)
	History(sessionID string) ([]models.ChatMessage, error)
	ClearChat(sessionID string) error
}

type chatService struct {
	validator DocumentValidator
	gateway   ReasoningGateway
	chatRepo  repositories.ChatRepository
}

func NewChatService(
	validator DocumentValidator,
	gateway ReasoningGateway,
	chatRepo repositories.ChatRepository,
) ChatService {
	return &chatService{
		validator: validator,
		gateway:   gateway,
		chatRepo:  chatRepo,
	}
}

// InitChat implements ChatService. Re-initializing a session pins the new
// resume and drops any previous conversation.
func (s *chatService) InitChat(sessionID, resumeText string) error {
	if verdict := s.validator.ValidateResume(resumeText); !verdict.Valid {
		return &InputRejectedError{Document: "resume", Verdict: verdict}
	}

	chat := &models.Chat{
		SessionID:  sessionID,
		ResumeText: resumeText,
		Messages:   datatypes.NewJSONSlice([]models.ChatMessage{}),
	}
	if err := s.chatRepo.UpsertBySessionID(chat); err != nil {
		return err
	}

	log.Printf("💬 Chat initialized for session %s", sessionID)
	return nil
}

// SendMessage implements ChatService. The new user turn is appended first and
// the window sliced after, so the provider sees at most chatContextWindow
// turns including the new message. Both turns are then persisted; a failed
// save fails the call so the stored history never silently diverges from what
// the user saw.
func (s *chatService) SendMessage(ctx context.Context, sessionID, message string) (string, []models.ChatMessage, error) {
	chat, err := s.chatRepo.FindBySessionID(sessionID)
	if err != nil {
		return "", nil, ErrNotFound
	}

	history := append([]models.ChatMessage(chat.Messages),
		models.ChatMessage{Role: models.RoleUser, Content: message})

	window := history
	if len(window) > chatContextWindow {
		window = window[len(window)-chatContextWindow:]
	}

	reply, err := s.gateway.ChatReply(ctx, chat.ResumeText, window[:len(window)-1], message)
	if err != nil {
		return "", nil, err
	}

	updated := append(history, models.ChatMessage{Role: models.RoleAssistant, Content: reply})

	if err := s.chatRepo.SaveMessages(sessionID, updated); err != nil {
		return "", nil, fmt.Errorf("failed to persist chat history: %w", err)
	}

	return reply, updated, nil
}

// History implements ChatService.
func (s *chatService) History(sessionID string) ([]models.ChatMessage, error) {
	chat, err := s.chatRepo.FindBySessionID(sessionID)
	if err != nil {
		return nil, ErrNotFound
	}

	return []models.ChatMessage(chat.Messages), nil
}

// ClearChat implements ChatService. The record and its resume text survive;
// only the messages go.
func (s *chatService) ClearChat(sessionID string) error {
	if _, err := s.chatRepo.FindBySessionID(sessionID); err != nil {
		return ErrNotFound
	}

	if err := s.chatRepo.SaveMessages(sessionID, []models.ChatMessage{}); err != nil {
		return err
	}

	log.Printf("🧹 Chat history cleared for session %s", sessionID)
	return nil
}
