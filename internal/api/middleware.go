package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hanbit-dev/carebond/internal/models"
)

const (
	authCookieName     = "carebond_auth"
	languageCookieName = "carebond_lang"
	contextUserKey     = "current_user"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func currentMessages(c *fiber.Ctx) map[string]string {
	messages, _ := c.Locals(contextMessagesKey).(map[string]string)
	return messages
}
