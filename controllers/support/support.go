package supportController

import (
	"log"

	"agazian/middleware"
	"agazian/utils"

	"github.com/gofiber/fiber/v2"
)

// ContactRequest is a contact-form submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Contact forwards a visitor message to the site owner by email
func Contact(c *fiber.Ctx) error {
	req := c.Locals("validatedContact").(*ContactRequest)

	if err := utils.SendContactMessage(req.Name, req.Email, req.Message); err != nil {
		log.Printf("Failed to forward contact message from %s: %v", req.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send message. Please try again later.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message sent. We will get back to you soon.", nil)
}
