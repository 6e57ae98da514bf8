package supportRoutes

import (
	assistantController "agazian/controllers/assistant"
	supportController "agazian/controllers/support"
	"agazian/middleware"
	supportValidator "agazian/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupSupportRoutes(app *fiber.App) {
	supportGroup := app.Group("/support")
	supportGroup.Post("/contact", supportValidator.Contact(), supportController.Contact)

	assistantGroup := app.Group("/assistant", middleware.JWTMiddleware)
	assistantGroup.Post("/chat", supportValidator.Chat(), assistantController.Chat)
}
