package courseValidator

import (
	"strings"

	"agazian/middleware"

	courseController "agazian/controllers/course"

	"github.com/gofiber/fiber/v2"
)

// ============ Course Validators ============

// CreateCourseAdmin validates admin course creation request
func CreateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.CourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.TitleEn = strings.TrimSpace(reqData.TitleEn)
		reqData.TitleAm = strings.TrimSpace(reqData.TitleAm)
		reqData.DescriptionEn = strings.TrimSpace(reqData.DescriptionEn)
		reqData.DescriptionAm = strings.TrimSpace(reqData.DescriptionAm)

		if reqData.TitleEn == "" {
			errors["title_en"] = "English title is required!"
		}
		if reqData.TitleAm == "" {
			errors["title_am"] = "Amharic title is required!"
		}
		if reqData.DescriptionEn == "" {
			errors["description_en"] = "English description is required!"
		}
		if reqData.DescriptionAm == "" {
			errors["description_am"] = "Amharic description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourseAdmin validates admin course update request
func UpdateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(courseController.CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.TitleEn = strings.TrimSpace(reqData.TitleEn)
		reqData.TitleAm = strings.TrimSpace(reqData.TitleAm)
		reqData.DescriptionEn = strings.TrimSpace(reqData.DescriptionEn)
		reqData.DescriptionAm = strings.TrimSpace(reqData.DescriptionAm)

		c.Locals("courseID", id)
		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// ============ Module Validators ============

// CreateModule validates admin module creation request
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(courseController.ModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.TitleEn = strings.TrimSpace(reqData.TitleEn)
		reqData.TitleAm = strings.TrimSpace(reqData.TitleAm)

		if reqData.TitleEn == "" {
			errors["title_en"] = "English title is required!"
		}
		if reqData.TitleAm == "" {
			errors["title_am"] = "Amharic title is required!"
		}
		if strings.TrimSpace(reqData.ContentEn) == "" {
			errors["content_en"] = "English content is required!"
		}
		if strings.TrimSpace(reqData.ContentAm) == "" {
			errors["content_am"] = "Amharic content is required!"
		}
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", id)
		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModule validates admin module update request
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(courseController.ModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.OrderIndex < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Order must not be negative!", nil)
		}

		c.Locals("moduleID", id)
		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// ============ Quiz Validators ============

// CreateQuiz validates admin quiz creation request
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.QuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ModuleID == 0 {
			errors["module_id"] = "module_id is required!"
		}
		if strings.TrimSpace(reqData.QuestionEn) == "" {
			errors["question_en"] = "English question is required!"
		}
		if strings.TrimSpace(reqData.QuestionAm) == "" {
			errors["question_am"] = "Amharic question is required!"
		}
		if len(reqData.OptionsEn) < 2 {
			errors["options_en"] = "At least two English options are required!"
		}
		if len(reqData.OptionsAm) < 2 {
			errors["options_am"] = "At least two Amharic options are required!"
		}
		if strings.TrimSpace(reqData.CorrectAnswer) == "" {
			errors["correct_answer"] = "Correct answer is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// UpdateQuiz validates admin quiz update request
func UpdateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}

		reqData := new(courseController.QuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.OptionsEn) == 1 {
			errors["options_en"] = "At least two English options are required!"
		}
		if len(reqData.OptionsAm) == 1 {
			errors["options_am"] = "At least two Amharic options are required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("quizID", id)
		c.Locals("validatedQuizUpdate", reqData)
		return c.Next()
	}
}
