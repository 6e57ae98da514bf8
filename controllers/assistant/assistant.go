package assistantController

import (
	"log"

	"agazian/middleware"
	"agazian/utils"

	"github.com/gofiber/fiber/v2"
)

// ChatRequest is a learner question for the Ge'ez assistant
type ChatRequest struct {
	Message string `json:"message"`
	Lang    string `json:"lang"`
}

// Chat relays a question to the assistant and returns its reply
func Chat(c *fiber.Ctx) error {
	req := c.Locals("validatedChat").(*ChatRequest)

	// AskAssistant always returns a usable reply; a configured-but-failing
	// upstream falls back to a canned answer in the learner's language.
	reply, err := utils.AskAssistant(req.Message, req.Lang)
	if err != nil {
		log.Printf("Assistant fallback used: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assistant reply!", fiber.Map{"reply": reply})
}
