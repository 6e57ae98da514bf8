package courseRoutes

import (
	controllers "agazian/controllers/course"
	"agazian/middleware"
	validators "agazian/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin content management routes
func SetupAdminCourseRoutes(app *fiber.App, ctl *controllers.Controller) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	// Course CRUD
	adminGroup.Post("/course", validators.CreateCourseAdmin(), ctl.AdminCreateCourse)
	adminGroup.Put("/course/:id", validators.UpdateCourseAdmin(), ctl.AdminUpdateCourse)
	adminGroup.Delete("/course/:id", validators.CourseID(), ctl.AdminDeleteCourse)

	// Module management
	adminGroup.Post("/course/:id/module", validators.CreateModule(), ctl.AdminCreateModule)
	adminGroup.Put("/module/:id", validators.UpdateModule(), ctl.AdminUpdateModule)
	adminGroup.Delete("/module/:id", validators.ModuleID(), ctl.AdminDeleteModule)

	// Quiz management
	adminGroup.Post("/quiz", validators.CreateQuiz(), ctl.AdminCreateQuiz)
	adminGroup.Put("/quiz/:id", validators.UpdateQuiz(), ctl.AdminUpdateQuiz)
	adminGroup.Delete("/quiz/:id", validators.QuizID(), ctl.AdminDeleteQuiz)

	// Dashboard
	adminGroup.Get("/dashboard/stats", ctl.AdminDashboardStats)
}
