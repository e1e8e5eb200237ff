package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"atscribe/resume-analyzer/internal/models"
)

func TestInitChat(t *testing.T) {
	t.Run("rejects an invalid resume", func(t *testing.T) {
		svc := NewChatService(NewDocumentValidator(), &fakeGateway{}, newFakeChatRepo())

		err := svc.InitChat("s1", "not a resume")
		var rejected *InputRejectedError
		require.ErrorAs(t, err, &rejected)
	})

	t.Run("re-initializing drops the old conversation", func(t *testing.T) {
		repo := newFakeChatRepo()
		gateway := &fakeGateway{reply: "hello"}
		svc := NewChatService(NewDocumentValidator(), gateway, repo)

		require.NoError(t, svc.InitChat("s1", validResumeText))
		_, _, err := svc.SendMessage(context.Background(), "s1", "hi")
		require.NoError(t, err)

		require.NoError(t, svc.InitChat("s1", validResumeText))
		history, err := svc.History("s1")
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}

func TestSendMessage(t *testing.T) {
	t.Run("unknown session", func(t *testing.T) {
		svc := NewChatService(NewDocumentValidator(), &fakeGateway{}, newFakeChatRepo())

		_, _, err := svc.SendMessage(context.Background(), "missing", "hi")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("appends both turns to the history", func(t *testing.T) {
		repo := newFakeChatRepo()
		gateway := &fakeGateway{reply: "the candidate knows Go"}
		svc := NewChatService(NewDocumentValidator(), gateway, repo)
		require.NoError(t, svc.InitChat("s1", validResumeText))

		reply, messages, err := svc.SendMessage(context.Background(), "s1", "what languages?")
		require.NoError(t, err)
		assert.Equal(t, "the candidate knows Go", reply)
		require.Len(t, messages, 2)
		assert.Equal(t, models.RoleUser, messages[0].Role)
		assert.Equal(t, "what languages?", messages[0].Content)
		assert.Equal(t, models.RoleAssistant, messages[1].Role)

		history, err := svc.History("s1")
		require.NoError(t, err)
		assert.Len(t, history, 2)
	})

	t.Run("provider sees at most the last ten stored turns", func(t *testing.T) {
		repo := newFakeChatRepo()
		preloaded := make([]models.ChatMessage, 0, 24)
		for i := 0; i < 24; i++ {
			role := models.RoleUser
			if i%2 == 1 {
				role = models.RoleAssistant
			}
			preloaded = append(preloaded, models.ChatMessage{Role: role, Content: fmt.Sprintf("turn %d", i)})
		}
		repo.bySession["s1"] = &models.Chat{
			SessionID:  "s1",
			ResumeText: validResumeText,
			Messages:   datatypes.NewJSONSlice(preloaded),
		}

		gateway := &fakeGateway{reply: "ok"}
		svc := NewChatService(NewDocumentValidator(), gateway, repo)

		_, messages, err := svc.SendMessage(context.Background(), "s1", "latest question")
		require.NoError(t, err)

		// The window counts the new user turn, so nine prior turns remain.
		require.Len(t, gateway.lastHistory, chatContextWindow-1)
		assert.Equal(t, "turn 15", gateway.lastHistory[0].Content)
		assert.Equal(t, "turn 23", gateway.lastHistory[chatContextWindow-2].Content)
		assert.Equal(t, "latest question", gateway.lastMessage)

		// Full history keeps everything: 24 stored + the 2 new turns.
		assert.Len(t, messages, 26)
	})

	t.Run("a persistence failure fails the call", func(t *testing.T) {
		repo := newFakeChatRepo()
		gateway := &fakeGateway{reply: "ok"}
		svc := NewChatService(NewDocumentValidator(), gateway, repo)
		require.NoError(t, svc.InitChat("s1", validResumeText))

		repo.saveErr = errors.New("db down")
		_, _, err := svc.SendMessage(context.Background(), "s1", "hi")
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to persist chat history")

		// The stored history never picked up the lost turns.
		repo.saveErr = nil
		history, err := svc.History("s1")
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}

func TestClearChat(t *testing.T) {
	repo := newFakeChatRepo()
	gateway := &fakeGateway{reply: "hello"}
	svc := NewChatService(NewDocumentValidator(), gateway, repo)
	require.NoError(t, svc.InitChat("s1", validResumeText))
	_, _, err := svc.SendMessage(context.Background(), "s1", "hi")
	require.NoError(t, err)

	require.NoError(t, svc.ClearChat("s1"))

	// The record survives with its resume; only the messages are gone.
	history, err := svc.History("s1")
	require.NoError(t, err)
	assert.Empty(t, history)

	_, _, err = svc.SendMessage(context.Background(), "s1", "still there?")
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.ClearChat("missing"), ErrNotFound)
}
