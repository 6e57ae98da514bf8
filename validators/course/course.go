package courseValidator

import (
	"strconv"
	"strings"

	"agazian/middleware"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// CourseID validates the :id course path parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}

// ModuleID validates the :id module path parameter
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}
		c.Locals("moduleID", id)
		return c.Next()
	}
}

// QuizID validates the :id quiz path parameter
func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}
		c.Locals("quizID", id)
		return c.Next()
	}
}
