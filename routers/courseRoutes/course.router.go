package courseRoutes

import (
	controllers "agazian/controllers/course"
	validators "agazian/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public course catalog routes
func SetupCourseRoutes(app *fiber.App, ctl *controllers.Controller) {
	courseGroup := app.Group("/course")

	courseGroup.Get("/list", ctl.ListCourses)
	courseGroup.Get("/:id", validators.CourseID(), ctl.GetCourse)
	courseGroup.Get("/:id/modules", validators.CourseID(), ctl.ListModules)

	moduleGroup := app.Group("/module")
	moduleGroup.Get("/:id", validators.ModuleID(), ctl.GetModule)
	moduleGroup.Get("/:id/quizzes", validators.ModuleID(), ctl.ListQuizzes)
}
