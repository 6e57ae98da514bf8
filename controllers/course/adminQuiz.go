package courseController

import (
	"log"

	"agazian/middleware"
	"agazian/models"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateQuiz attaches a multiple choice question to a module
func (ctl *Controller) AdminCreateQuiz(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuiz").(*QuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var module models.Module
	if err := ctl.DB.First(&module, reqData.ModuleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	quiz := models.Quiz{
		ModuleID:      reqData.ModuleID,
		QuestionEn:    reqData.QuestionEn,
		QuestionAm:    reqData.QuestionAm,
		OptionsEn:     reqData.OptionsEn,
		OptionsAm:     reqData.OptionsAm,
		CorrectAnswer: reqData.CorrectAnswer,
	}

	if err := ctl.DB.Create(&quiz).Error; err != nil {
		log.Printf("Create quiz error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// AdminUpdateQuiz updates the provided fields of a quiz
func (ctl *Controller) AdminUpdateQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(uint)
	reqData, ok := c.Locals("validatedQuizUpdate").(*QuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var quiz models.Quiz
	if err := ctl.DB.First(&quiz, quizID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if reqData.QuestionEn != "" {
		quiz.QuestionEn = reqData.QuestionEn
	}
	if reqData.QuestionAm != "" {
		quiz.QuestionAm = reqData.QuestionAm
	}
	if len(reqData.OptionsEn) > 0 {
		quiz.OptionsEn = reqData.OptionsEn
	}
	if len(reqData.OptionsAm) > 0 {
		quiz.OptionsAm = reqData.OptionsAm
	}
	if reqData.CorrectAnswer != "" {
		quiz.CorrectAnswer = reqData.CorrectAnswer
	}

	if err := ctl.DB.Save(&quiz).Error; err != nil {
		log.Printf("Update quiz error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", quiz)
}

// AdminDeleteQuiz removes one quiz
func (ctl *Controller) AdminDeleteQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(uint)

	var quiz models.Quiz
	if err := ctl.DB.First(&quiz, quizID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if err := ctl.DB.Delete(&quiz).Error; err != nil {
		log.Printf("Delete quiz error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}

// QuizRequest is the validated body of the admin quiz endpoints
type QuizRequest struct {
	ModuleID      uint     `json:"module_id"`
	QuestionEn    string   `json:"question_en"`
	QuestionAm    string   `json:"question_am"`
	OptionsEn     []string `json:"options_en"`
	OptionsAm     []string `json:"options_am"`
	CorrectAnswer string   `json:"correct_answer"`
}
