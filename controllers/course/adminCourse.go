package courseController

import (
	"errors"
	"log"

	"agazian/middleware"
	"agazian/models"
	"agazian/services"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateCourse creates a course with bilingual titles and descriptions
func (ctl *Controller) AdminCreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		TitleEn:       reqData.TitleEn,
		TitleAm:       reqData.TitleAm,
		DescriptionEn: reqData.DescriptionEn,
		DescriptionAm: reqData.DescriptionAm,
		Thumbnail:     reqData.Thumbnail,
		CreatedBy:     userID,
	}

	if err := ctl.DB.Create(&course).Error; err != nil {
		log.Printf("Create course error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates the provided bilingual fields of a course
func (ctl *Controller) AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData, ok := c.Locals("validatedCourseUpdate").(*CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := ctl.DB.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if reqData.TitleEn != "" {
		course.TitleEn = reqData.TitleEn
	}
	if reqData.TitleAm != "" {
		course.TitleAm = reqData.TitleAm
	}
	if reqData.DescriptionEn != "" {
		course.DescriptionEn = reqData.DescriptionEn
	}
	if reqData.DescriptionAm != "" {
		course.DescriptionAm = reqData.DescriptionAm
	}
	course.Thumbnail = reqData.Thumbnail

	if err := ctl.DB.Save(&course).Error; err != nil {
		log.Printf("Update course error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse removes a course along with its modules, quizzes and
// every learner's progress record, in one transaction
func (ctl *Controller) AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	if err := ctl.Progression.CascadeDeleteCourse(courseID); err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Delete course error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// CourseRequest is the validated body of the admin course endpoints
type CourseRequest struct {
	TitleEn       string `json:"title_en"`
	TitleAm       string `json:"title_am"`
	DescriptionEn string `json:"description_en"`
	DescriptionAm string `json:"description_am"`
	Thumbnail     string `json:"thumbnail"`
}
