package courseController

import (
	"log"
	"math"

	"agazian/middleware"
	"agazian/models"

	"github.com/gofiber/fiber/v2"
)

// AdminDashboardStats aggregates platform-wide statistics for the admin
// dashboard: headcounts, enrollments, completions, point totals and the
// most-enrolled courses.
func (ctl *Controller) AdminDashboardStats(c *fiber.Ctx) error {
	var (
		totalUsers       int64
		totalAdmins      int64
		totalCourses     int64
		totalModules     int64
		totalQuizzes     int64
		totalEnrollments int64
		completedCourses int64
	)

	ctl.DB.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&totalUsers)
	ctl.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&totalAdmins)
	ctl.DB.Model(&models.Course{}).Count(&totalCourses)
	ctl.DB.Model(&models.Module{}).Count(&totalModules)
	ctl.DB.Model(&models.Quiz{}).Count(&totalQuizzes)
	ctl.DB.Model(&models.UserProgress{}).Count(&totalEnrollments)
	ctl.DB.Model(&models.UserProgress{}).Where("course_completed = ?", true).Count(&completedCourses)

	var totalPoints int64
	if err := ctl.DB.Model(&models.UserProgress{}).
		Select("COALESCE(SUM(points), 0)").
		Scan(&totalPoints).Error; err != nil {
		log.Printf("Analytics error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch analytics!", nil)
	}

	averagePoints := 0
	if totalUsers > 0 {
		averagePoints = int(math.Round(float64(totalPoints) / float64(totalUsers)))
	}

	// Top courses by enrollment
	type topCourse struct {
		CourseID      uint   `json:"course_id"`
		CourseTitleEn string `json:"course_title_en"`
		CourseTitleAm string `json:"course_title_am"`
		Enrollments   int64  `json:"enrollments"`
	}
	var topCourses []topCourse
	if err := ctl.DB.Model(&models.UserProgress{}).
		Select("user_progresses.course_id, courses.title_en AS course_title_en, courses.title_am AS course_title_am, COUNT(*) AS enrollments").
		Joins("JOIN courses ON courses.id = user_progresses.course_id AND courses.deleted_at IS NULL").
		Group("user_progresses.course_id, courses.title_en, courses.title_am").
		Order("enrollments DESC").
		Limit(10).
		Scan(&topCourses).Error; err != nil {
		log.Printf("Analytics error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch analytics!", nil)
	}

	// Recent learner signups
	var recentUsers []models.User
	ctl.DB.Where("role = ?", models.RoleUser).
		Order("created_at desc").
		Limit(10).
		Find(&recentUsers)

	recent := make([]fiber.Map, 0, len(recentUsers))
	for _, u := range recentUsers {
		recent = append(recent, fiber.Map{
			"name":       u.Name,
			"email":      u.Email,
			"role":       u.Role,
			"created_at": u.CreatedAt,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully!", fiber.Map{
		"stats": fiber.Map{
			"total_users":            totalUsers,
			"total_admins":           totalAdmins,
			"total_courses":          totalCourses,
			"total_modules":          totalModules,
			"total_quizzes":          totalQuizzes,
			"total_enrollments":      totalEnrollments,
			"completed_courses":      completedCourses,
			"total_points":           totalPoints,
			"average_points_per_user": averagePoints,
		},
		"top_courses":  topCourses,
		"recent_users": recent,
	})
}
