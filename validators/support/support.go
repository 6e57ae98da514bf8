package supportValidator

import (
	"regexp"
	"strings"

	assistantController "agazian/controllers/assistant"
	supportController "agazian/controllers/support"
	"agazian/middleware"

	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Contact validates a contact-form submission
func Contact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(supportController.ContactRequest)
		if err := c.BodyParser(body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid input data!", nil)
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Email = strings.ToLower(strings.TrimSpace(body.Email))
		body.Message = strings.TrimSpace(body.Message)

		errors := make(map[string]string)
		if body.Name == "" {
			errors["name"] = "Name is required."
		}
		if !emailRegex.MatchString(body.Email) {
			errors["email"] = "Invalid email address."
		}
		if len(body.Message) < 10 {
			errors["message"] = "Message must be at least 10 characters long."
		}
		if len(errors) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid data!", errors)
		}

		c.Locals("validatedContact", body)
		return c.Next()
	}
}

// Chat validates an assistant question
func Chat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(assistantController.ChatRequest)
		if err := c.BodyParser(body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid input data!", nil)
		}

		body.Message = strings.TrimSpace(body.Message)
		if body.Message == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Message is required!", nil)
		}
		if len(body.Message) > 2000 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Message is too long!", nil)
		}
		if body.Lang != "am" {
			body.Lang = "en"
		}

		c.Locals("validatedChat", body)
		return c.Next()
	}
}
