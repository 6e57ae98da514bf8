package progressRoutes

import (
	progressController "agazian/controllers/progress"
	"agazian/middleware"
	progressValidator "agazian/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes sets up the learner progress routes. Every route
// requires a logged-in user; the leaderboard only exposes names and
// points of users who opted into progress tracking by enrolling.
func SetupProgressRoutes(app *fiber.App, ctl *progressController.Controller) {
	progressGroup := app.Group("/progress", middleware.JWTMiddleware)

	progressGroup.Post("/enroll", progressValidator.Enroll(), ctl.Enroll)
	progressGroup.Post("/update", progressValidator.Update(), ctl.Update)
	progressGroup.Get("/me", ctl.Me)
	progressGroup.Get("/leaderboard", ctl.Leaderboard)
}
