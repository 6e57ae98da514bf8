package progressValidator

import (
	"agazian/middleware"

	progressController "agazian/controllers/progress"

	"github.com/gofiber/fiber/v2"
)

// Enroll validates the enrollment request body
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint `json:"courseId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "courseId is required!", nil)
		}

		c.Locals("courseID", reqData.CourseID)
		return c.Next()
	}
}

// Update validates the quiz-outcome request body
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID           uint  `json:"courseId"`
			ModuleID           uint  `json:"moduleId"`
			PointsEarned       *int  `json:"pointsEarned"`
			MarkModuleComplete *bool `json:"markModuleComplete"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "courseId is required!"
		}
		if reqData.ModuleID == 0 {
			errors["moduleId"] = "moduleId is required!"
		}
		if reqData.PointsEarned == nil {
			errors["pointsEarned"] = "pointsEarned must be a number!"
		} else if *reqData.PointsEarned < 0 {
			errors["pointsEarned"] = "pointsEarned must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid data!", errors)
		}

		markComplete := false
		if reqData.MarkModuleComplete != nil {
			markComplete = *reqData.MarkModuleComplete
		}

		c.Locals("validatedProgressUpdate", &progressController.ProgressUpdateRequest{
			CourseID:           reqData.CourseID,
			ModuleID:           reqData.ModuleID,
			PointsEarned:       *reqData.PointsEarned,
			MarkModuleComplete: markComplete,
		})
		return c.Next()
	}
}
