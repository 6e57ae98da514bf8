package courseController

import (
	"log"

	"agazian/middleware"
	"agazian/models"
	"agazian/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Controller serves the public catalog and the admin CRUD endpoints
type Controller struct {
	DB          *gorm.DB
	Progression *services.ProgressionService
}

func New(db *gorm.DB, progression *services.ProgressionService) *Controller {
	return &Controller{DB: db, Progression: progression}
}

// ListCourses returns all courses, newest first
func (ctl *Controller) ListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := ctl.DB.Order("created_at desc").Find(&courses).Error; err != nil {
		log.Printf("Fetch courses error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetCourse returns one course by id
func (ctl *Controller) GetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := ctl.DB.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course": course,
	})
}

// ListModules returns the modules of a course in display order
func (ctl *Controller) ListModules(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := ctl.DB.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []models.Module
	if err := ctl.DB.Where("course_id = ?", courseID).Order("order_index asc").Find(&modules).Error; err != nil {
		log.Printf("Fetch modules error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules": modules,
	})
}

// GetModule returns one module by id
func (ctl *Controller) GetModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)

	var module models.Module
	if err := ctl.DB.First(&module, moduleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", fiber.Map{
		"module": module,
	})
}

// ListQuizzes returns the quizzes attached to a module
func (ctl *Controller) ListQuizzes(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)

	var module models.Module
	if err := ctl.DB.First(&module, moduleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var quizzes []models.Quiz
	if err := ctl.DB.Where("module_id = ?", moduleID).Find(&quizzes).Error; err != nil {
		log.Printf("Fetch quizzes error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", fiber.Map{
		"quizzes": quizzes,
	})
}
