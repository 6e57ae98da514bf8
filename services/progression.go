package services

import (
	"errors"
	"log"

	"agazian/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrModuleNotFound = errors.New("module not found")
	ErrInvalidPoints  = errors.New("pointsEarned must be a non-negative number")
)

// ProgressionService owns every read and write against UserProgress.
// The database handle is injected at startup.
type ProgressionService struct {
	DB *gorm.DB
}

func NewProgressionService(db *gorm.DB) *ProgressionService {
	return &ProgressionService{DB: db}
}

// QuizResult is returned from RecordQuizResult so callers can render correct
// feedback, e.g. suppress the points-awarded message on a repeat pass.
type QuizResult struct {
	Progress         *models.UserProgress `json:"progress"`
	AlreadyCompleted bool                 `json:"already_completed"`
	CourseCompleted  bool                 `json:"course_completed"`
}

// CourseProgress is a progress record enriched with the owning course's
// bilingual titles for the learner dashboard.
type CourseProgress struct {
	models.UserProgress
	CourseTitleEn string `json:"course_title_en"`
	CourseTitleAm string `json:"course_title_am"`
}

// LeaderboardEntry is one row of the points-per-user ranking
type LeaderboardEntry struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// Enroll creates a zero-state progress record if none exists for the
// (user, course) pair; otherwise it returns the existing one. Idempotent
// under the unique (user_id, course_id) index.
func (s *ProgressionService) Enroll(userID, courseID uint) (*models.UserProgress, error) {
	var course models.Course
	if err := s.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	prog := models.UserProgress{
		UserID:           userID,
		CourseID:         courseID,
		Points:           0,
		Level:            1,
		Badges:           []string{},
		CompletedModules: []uint{},
	}
	err := s.DB.Where("user_id = ? AND course_id = ?", userID, courseID).
		FirstOrCreate(&prog).Error
	if err != nil {
		// A concurrent enroll may have won the unique-index race; the
		// existing row is the correct answer either way.
		var existing models.UserProgress
		if ferr := s.DB.Where("user_id = ? AND course_id = ?", userID, courseID).
			First(&existing).Error; ferr == nil {
			return &existing, nil
		}
		return nil, err
	}
	return &prog, nil
}

// RecordQuizResult applies a quiz outcome to the learner's progress for a
// course. Points and module-completion credit are granted only when every
// answer was correct and the module was not already completed, so repeated
// submissions never double-award. Level, badges and course completion are
// recomputed from the updated point total.
func (s *ProgressionService) RecordQuizResult(userID, courseID, moduleID uint, pointsEarned int, allCorrect bool) (*QuizResult, error) {
	if pointsEarned < 0 {
		return nil, ErrInvalidPoints
	}

	var result QuizResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var module models.Module
		if err := tx.Where("id = ? AND course_id = ?", moduleID, courseID).
			First(&module).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrModuleNotFound
			}
			return err
		}

		var prog models.UserProgress
		err := lockForUpdate(tx).
			Where("user_id = ? AND course_id = ?", userID, courseID).
			First(&prog).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			prog = models.UserProgress{
				UserID:           userID,
				CourseID:         courseID,
				Points:           0,
				Level:            1,
				Badges:           []string{},
				CompletedModules: []uint{},
			}
			if err := tx.Create(&prog).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		alreadyCompleted := prog.HasCompleted(moduleID)

		if allCorrect && !alreadyCompleted {
			prog.Points += pointsEarned
			prog.CompletedModules = append(prog.CompletedModules, moduleID)
		}

		prog.ModuleID = &moduleID
		prog.Level = models.LevelFor(prog.Points)
		awardBadges(&prog)

		if !prog.CourseCompleted {
			done, err := courseFullyCompleted(tx, courseID, &prog)
			if err != nil {
				return err
			}
			prog.CourseCompleted = done
		}

		if err := tx.Save(&prog).Error; err != nil {
			return err
		}

		result = QuizResult{
			Progress:         &prog,
			AlreadyCompleted: alreadyCompleted,
			CourseCompleted:  prog.CourseCompleted,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// courseFullyCompleted reports whether the progress record covers every
// module of the course. An empty course is never complete.
func courseFullyCompleted(tx *gorm.DB, courseID uint, prog *models.UserProgress) (bool, error) {
	var moduleIDs []uint
	if err := tx.Model(&models.Module{}).
		Where("course_id = ?", courseID).
		Pluck("id", &moduleIDs).Error; err != nil {
		return false, err
	}
	if len(moduleIDs) == 0 {
		return false, nil
	}
	for _, id := range moduleIDs {
		if !prog.HasCompleted(id) {
			return false, nil
		}
	}
	return true, nil
}

// ListProgress returns every progress record for the user enriched with the
// owning course's bilingual titles. Records whose course has been deleted
// are excluded; removing them is the job of the reconciliation sweep, not
// of a read endpoint.
func (s *ProgressionService) ListProgress(userID uint) ([]CourseProgress, error) {
	var records []models.UserProgress
	if err := s.DB.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return nil, err
	}

	result := make([]CourseProgress, 0, len(records))
	for _, rec := range records {
		var course models.Course
		if err := s.DB.First(&course, rec.CourseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue // orphaned record, swept by ReconcileOrphanedProgress
			}
			return nil, err
		}
		result = append(result, CourseProgress{
			UserProgress:  rec,
			CourseTitleEn: course.TitleEn,
			CourseTitleAm: course.TitleAm,
		})
	}
	return result, nil
}

// Leaderboard sums points per user across all courses, descending, capped
// at 100 entries. Ties keep a stable order by user id.
func (s *ProgressionService) Leaderboard() ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := s.DB.Model(&models.UserProgress{}).
		Select("user_progresses.user_id, users.name, SUM(user_progresses.points) AS points").
		Joins("JOIN users ON users.id = user_progresses.user_id AND users.deleted_at IS NULL").
		Group("user_progresses.user_id, users.name").
		Order("points DESC, user_progresses.user_id ASC").
		Limit(100).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// CascadeDeleteCourse removes a course and everything hanging off it:
// quizzes of its modules, the modules, and every progress record. The whole
// cascade runs in one transaction so a partial failure leaves no orphans.
func (s *ProgressionService) CascadeDeleteCourse(courseID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCourseNotFound
			}
			return err
		}

		var moduleIDs []uint
		if err := tx.Model(&models.Module{}).
			Where("course_id = ?", courseID).
			Pluck("id", &moduleIDs).Error; err != nil {
			return err
		}

		if len(moduleIDs) > 0 {
			if err := tx.Where("module_id IN ?", moduleIDs).
				Delete(&models.Quiz{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("course_id = ?", courseID).
			Delete(&models.Module{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).
			Delete(&models.UserProgress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
}

// ReconcileOrphanedProgress deletes progress records whose course no longer
// exists. The cascade makes orphans unlikely, but the sweep is kept as an
// idempotent safety net and runs on a schedule.
func (s *ProgressionService) ReconcileOrphanedProgress() (int64, error) {
	res := s.DB.
		Where("course_id NOT IN (?)", s.DB.Model(&models.Course{}).Select("id")).
		Delete(&models.UserProgress{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("Reconciliation removed %d orphaned progress record(s)", res.RowsAffected)
	}
	return res.RowsAffected, nil
}

// lockForUpdate takes a row lock so two concurrent quiz submissions for the
// same (user, course) serialize on the store instead of racing the
// read-modify-write. SQLite has no row locks; its single writer gives the
// same guarantee.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
