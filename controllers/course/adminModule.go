package courseController

import (
	"log"

	"agazian/middleware"
	"agazian/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminCreateModule adds a module to a course
func (ctl *Controller) AdminCreateModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData, ok := c.Locals("validatedModule").(*ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := ctl.DB.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	module := models.Module{
		CourseID:   courseID,
		TitleEn:    reqData.TitleEn,
		TitleAm:    reqData.TitleAm,
		ContentEn:  reqData.ContentEn,
		ContentAm:  reqData.ContentAm,
		VideoURL:   reqData.VideoURL,
		OrderIndex: reqData.OrderIndex,
	}

	if err := ctl.DB.Create(&module).Error; err != nil {
		log.Printf("Create module error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// AdminUpdateModule updates the provided fields of a module
func (ctl *Controller) AdminUpdateModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)
	reqData, ok := c.Locals("validatedModuleUpdate").(*ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var module models.Module
	if err := ctl.DB.First(&module, moduleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if reqData.TitleEn != "" {
		module.TitleEn = reqData.TitleEn
	}
	if reqData.TitleAm != "" {
		module.TitleAm = reqData.TitleAm
	}
	if reqData.ContentEn != "" {
		module.ContentEn = reqData.ContentEn
	}
	if reqData.ContentAm != "" {
		module.ContentAm = reqData.ContentAm
	}
	module.VideoURL = reqData.VideoURL
	module.OrderIndex = reqData.OrderIndex

	if err := ctl.DB.Save(&module).Error; err != nil {
		log.Printf("Update module error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// AdminDeleteModule removes a module and its quizzes together
func (ctl *Controller) AdminDeleteModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)

	var module models.Module
	if err := ctl.DB.First(&module, moduleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("module_id = ?", moduleID).Delete(&models.Quiz{}).Error; err != nil {
			return err
		}
		return tx.Delete(&module).Error
	})
	if err != nil {
		log.Printf("Delete module error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// ModuleRequest is the validated body of the admin module endpoints
type ModuleRequest struct {
	TitleEn    string `json:"title_en"`
	TitleAm    string `json:"title_am"`
	ContentEn  string `json:"content_en"`
	ContentAm  string `json:"content_am"`
	VideoURL   string `json:"video_url"`
	OrderIndex int    `json:"order_index"`
}
