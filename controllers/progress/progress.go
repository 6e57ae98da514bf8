package progressController

import (
	"errors"
	"log"

	"agazian/middleware"
	"agazian/services"

	"github.com/gofiber/fiber/v2"
)

// Controller serves the learner progress endpoints. The progression service
// is injected at startup.
type Controller struct {
	Progression *services.ProgressionService
}

func New(progression *services.ProgressionService) *Controller {
	return &Controller{Progression: progression}
}

// Enroll creates a zero-state progress record for the caller, or returns
// the existing one
func (ctl *Controller) Enroll(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "courseId is required!", nil)
	}

	progress, err := ctl.Progression.Enroll(userID, courseID)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Enroll error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled.", progress)
}

// Update records a quiz outcome against the caller's progress
func (ctl *Controller) Update(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProgressUpdate").(*ProgressUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := ctl.Progression.RecordQuizResult(
		userID,
		reqData.CourseID,
		reqData.ModuleID,
		reqData.PointsEarned,
		reqData.MarkModuleComplete,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrModuleNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		case errors.Is(err, services.ErrInvalidPoints):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid data!", nil)
		default:
			log.Printf("Progress update error: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", result)
}

// Me lists the caller's progress across all courses with course titles
func (ctl *Controller) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	progress, err := ctl.Progression.ListProgress(userID)
	if err != nil {
		log.Printf("Fetch user progress error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress": progress,
	})
}

// Leaderboard returns the top point totals across all users
func (ctl *Controller) Leaderboard(c *fiber.Ctx) error {
	entries, err := ctl.Progression.Leaderboard()
	if err != nil {
		log.Printf("Leaderboard error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leaderboard!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leaderboard fetched successfully!", fiber.Map{
		"leaderboard": entries,
	})
}

// ProgressUpdateRequest is the validated body of POST /progress/update
type ProgressUpdateRequest struct {
	CourseID           uint `json:"courseId"`
	ModuleID           uint `json:"moduleId"`
	PointsEarned       int  `json:"pointsEarned"`
	MarkModuleComplete bool `json:"markModuleComplete"`
}
