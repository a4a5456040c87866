package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hanbit-dev/carebond/internal/models"
)

var (
	ErrMessageTextRequired   = errors.New("message text is required")
	ErrMessageRoleNotAllowed = errors.New("author role may not post to the thread")
)

// MessageThread is the ordered guardian/caregiver conversation. Messages are
// immutable once appended; removal is the only mutation.
type MessageThread struct {
	messages []models.Message
}

func NewMessageThread() *MessageThread {
	return &MessageThread{messages: make([]models.Message, 0)}
}

// NewMessageThreadFrom rebuilds a thread from already ordered messages.
func NewMessageThreadFrom(messages []models.Message) *MessageThread {
	thread := NewMessageThread()
	thread.messages = append(thread.messages, messages...)
	return thread
}

func (thread *MessageThread) Append(text string, authorRole string) (models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return models.Message{}, ErrMessageTextRequired
	}
	if authorRole != models.RoleGuardian && authorRole != models.RoleCaregiver {
		return models.Message{}, ErrMessageRoleNotAllowed
	}

	message := models.Message{
		ID:         uuid.NewString(),
		Text:       text,
		AuthorRole: authorRole,
		SentAt:     time.Now().UTC(),
	}
	thread.messages = append(thread.messages, message)
	return message, nil
}

func (thread *MessageThread) Remove(id string) {
	for index := range thread.messages {
		if thread.messages[index].ID == id {
			thread.messages = append(thread.messages[:index], thread.messages[index+1:]...)
			return
		}
	}
}

func (thread *MessageThread) List() []models.Message {
	messages := make([]models.Message, len(thread.messages))
	copy(messages, thread.messages)
	return messages
}

func (thread *MessageThread) Len() int {
	return len(thread.messages)
}
