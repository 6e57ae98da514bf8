package services

import (
	"fmt"
	"testing"

	"agazian/database"
	"agazian/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second pool connection would get its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@test.dev", name),
		Password: "hashed",
		Role:     models.RoleUser,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCourse(t *testing.T, db *gorm.DB, titleEn string) models.Course {
	t.Helper()
	course := models.Course{
		TitleEn:       titleEn,
		TitleAm:       titleEn + " አማ",
		DescriptionEn: "desc",
		DescriptionAm: "መግለጫ",
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func seedModule(t *testing.T, db *gorm.DB, courseID uint, order int) models.Module {
	t.Helper()
	module := models.Module{
		CourseID:   courseID,
		TitleEn:    fmt.Sprintf("Module %d", order),
		TitleAm:    fmt.Sprintf("ክፍል %d", order),
		ContentEn:  "content",
		ContentAm:  "ይዘት",
		OrderIndex: order,
	}
	require.NoError(t, db.Create(&module).Error)
	return module
}

func seedQuiz(t *testing.T, db *gorm.DB, moduleID uint) models.Quiz {
	t.Helper()
	quiz := models.Quiz{
		ModuleID:      moduleID,
		QuestionEn:    "What is the first letter?",
		QuestionAm:    "የመጀመሪያው ፊደል ምንድን ነው?",
		OptionsEn:     []string{"ሀ", "ለ"},
		OptionsAm:     []string{"ሀ", "ለ"},
		CorrectAnswer: "ሀ",
	}
	require.NoError(t, db.Create(&quiz).Error)
	return quiz
}

func TestEnrollIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressionService(db)
	user := seedUser(t, db, "abel")
	course := seedCourse(t, db, "Fidel Basics")

	first, err := svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Points)
	assert.Equal(t, 1, first.Level)
	assert.False(t, first.CourseCompleted)

	second, err := svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.UserProgress{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnrollUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressionService(db)
	user := seedUser(t, db, "abel")

	_, err := svc.Enroll(user.ID, 999)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestRecordQuizResultAwardsOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressionService(db)
	user := seedUser(t, db, "abel")
	course := seedCourse(t, db, "Fidel Basics")
	m1 := seedModule(t, db, course.ID, 1)
	seedModule(t, db, course.ID, 2)

	res, err := svc.RecordQuizResult(user.ID, course.ID, m1.ID, 30, true)
	require.NoError(t, err)
	assert.False(t, res.AlreadyCompleted)
	assert.Equal(t, 30, res.Progress.Points)
	assert.True(t, res.Progress.HasCompleted(m1.ID))

	// Passing the same module again must not award anything
	res, err = svc.RecordQuizResult(user.ID, course.ID, m1.ID, 30, true)
	require.NoError(t, err)
	assert.True(t, res.AlreadyCompleted)
	assert.Equal(t, 30, res.Progress.Points)
	assert.Len(t, res.Progress.CompletedModules, 1)
}

func TestRecordQuizResultFailedAttempt(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressionService(db)
	user := seedUser(t, db, "abel")
	course := seedCourse(t, db, "Fidel Basics")
	m1 := seedModule(t, db, course.ID, 1)

	res, err := svc.RecordQuizResult(user.ID, course.ID, m1.ID, 30, false)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Progress.Points)
	assert.False(t, res.Progress.HasCompleted(m1.ID))
	assert.False(t, res.CourseCompleted)
}

func TestRecordQuizResultRejectsNegativePoints(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressionService(db)
	user := seedUser(t, db, "abel")
	course := seedCourse(t, db, "Fidel Basics")
	m1 := seedModule(t, db, course.ID, 1)

	_, err := svc.RecordQuizResult(user.ID, course.ID, m1.ID, -5, true)
	assert.ErrorIs(t, err, ErrInvalidPoints)
}

func TestRecordQuizResultModuleMustBelongToCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressionService(db)
	user := seedUser(t, db, "abel")
	course := seedCourse(t, db, "Fidel Basics")
	other := seedCourse(t, db, "Grammar")
	foreign := seedModule(t, db, other.ID, 1)

	_, err := svc.RecordQuizResult(user.ID, course.ID, foreign.ID, 10, true)
	assert.ErrorIs(t, err, ErrModuleNotFound)
}

func TestLevelAndBadgeThresholds(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressionService(db)
	user := seedUser(t, db, "abel")
	course := seedCourse(t, db, "Fidel Basics")
	m1 := seedModule(t, db, course.ID, 1)
	m2 := seedModule(t, db, course.ID, 2)
	m3 := seedModule(t, db, course.ID, 3)
	seedModule(t, db, course.ID, 4)

	// 499 points: level 5, one point short of the first badge
	res, err := svc.RecordQuizResult(user.ID, course.ID, m1.ID, 499, true)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Progress.Level)
	assert.Empty(t, []string(res.Progress.Badges))

	// Exactly 500: Ge'ez Scholar
	res, err = svc.RecordQuizResult(user.ID, course.ID, m2.ID, 1, true)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Progress.Level)
	assert.True(t, res.Progress.HasBadge(models.BadgeScholar))
	assert.False(t, res.Progress.HasBadge(models.BadgeMaster))

	// Crossing 1000 adds Master Linguist without duplicating the first badge
	res, err = svc.RecordQuizResult(user.ID, course.ID, m3.ID, 500, true)
	require.NoError(t, err)
	assert.True(t, res.Progress.HasBadge(models.BadgeMaster))
	assert.Len(t, []string(res.Progress.Badges), 2)
}

func TestCourseCompletion(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressionService(db)
	user := seedUser(t, db, "abel")
	course := seedCourse(t, db, "Fidel Basics")
	m1 := seedModule(t, db, course.ID, 1)
	m2 := seedModule(t, db, course.ID, 2)

	res, err := svc.RecordQuizResult(user.ID, course.ID, m1.ID, 30, true)
	require.NoError(t, err)
	assert.False(t, res.CourseCompleted)

	res, err = svc.RecordQuizResult(user.ID, course.ID, m2.ID, 20, true)
	require.NoError(t, err)
	assert.True(t, res.CourseCompleted)
	assert.Equal(t, 50, res.Progress.Points)
	assert.Equal(t, 1, res.Progress.Level)

	// Completion sticks on a repeat pass
	res, err = svc.RecordQuizResult(user.ID, course.ID, m1.ID, 30, true)
	require.NoError(t, err)
	assert.True(t, res.CourseCompleted)
	assert.Equal(t, 50, res.Progress.Points)
}

func TestListProgressSkipsOrphansWithoutDeleting(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressionService(db)
	user := seedUser(t, db, "abel")
	kept := seedCourse(t, db, "Fidel Basics")
	removed := seedCourse(t, db, "Grammar")

	_, err := svc.Enroll(user.ID, kept.ID)
	require.NoError(t, err)
	_, err = svc.Enroll(user.ID, removed.ID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.Course{}, removed.ID).Error)

	list, err := svc.ListProgress(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, kept.ID, list[0].CourseID)
	assert.Equal(t, kept.TitleEn, list[0].CourseTitleEn)

	// The orphaned record is left for the reconciliation sweep
	var count int64
	require.NoError(t, db.Model(&models.UserProgress{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestLeaderboardOrderingAndTies(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressionService(db)
	alice := seedUser(t, db, "alice")
	bete := seedUser(t, db, "bete")
	chala := seedUser(t, db, "chala")

	c1 := seedCourse(t, db, "Fidel Basics")
	c2 := seedCourse(t, db, "Grammar")
	m1 := seedModule(t, db, c1.ID, 1)
	seedModule(t, db, c1.ID, 2)
	m2 := seedModule(t, db, c2.ID, 1)
	seedModule(t, db, c2.ID, 2)

	// alice: 100 + 20 across two courses, bete and chala tie at 80
	_, err := svc.RecordQuizResult(alice.ID, c1.ID, m1.ID, 100, true)
	require.NoError(t, err)
	_, err = svc.RecordQuizResult(alice.ID, c2.ID, m2.ID, 20, true)
	require.NoError(t, err)
	_, err = svc.RecordQuizResult(bete.ID, c1.ID, m1.ID, 80, true)
	require.NoError(t, err)
	_, err = svc.RecordQuizResult(chala.ID, c1.ID, m1.ID, 80, true)
	require.NoError(t, err)

	entries, err := svc.Leaderboard()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, alice.ID, entries[0].UserID)
	assert.Equal(t, 120, entries[0].Points)
	assert.Equal(t, "alice", entries[0].Name)

	// Tie broken by user id, so bete comes before chala
	assert.Equal(t, bete.ID, entries[1].UserID)
	assert.Equal(t, chala.ID, entries[2].UserID)
}

func TestCascadeDeleteCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressionService(db)
	user := seedUser(t, db, "abel")
	course := seedCourse(t, db, "Fidel Basics")
	m1 := seedModule(t, db, course.ID, 1)
	m2 := seedModule(t, db, course.ID, 2)
	seedQuiz(t, db, m1.ID)
	seedQuiz(t, db, m2.ID)

	_, err := svc.RecordQuizResult(user.ID, course.ID, m1.ID, 30, true)
	require.NoError(t, err)

	require.NoError(t, svc.CascadeDeleteCourse(course.ID))

	var courses, modules, quizzes, progress int64
	require.NoError(t, db.Model(&models.Course{}).Count(&courses).Error)
	require.NoError(t, db.Model(&models.Module{}).Count(&modules).Error)
	require.NoError(t, db.Model(&models.Quiz{}).Count(&quizzes).Error)
	require.NoError(t, db.Model(&models.UserProgress{}).Count(&progress).Error)
	assert.Zero(t, courses)
	assert.Zero(t, modules)
	assert.Zero(t, quizzes)
	assert.Zero(t, progress)

	assert.ErrorIs(t, svc.CascadeDeleteCourse(course.ID), ErrCourseNotFound)
}

func TestReconcileOrphanedProgress(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressionService(db)
	user := seedUser(t, db, "abel")
	kept := seedCourse(t, db, "Fidel Basics")
	removed := seedCourse(t, db, "Grammar")

	_, err := svc.Enroll(user.ID, kept.ID)
	require.NoError(t, err)
	_, err = svc.Enroll(user.ID, removed.ID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.Course{}, removed.ID).Error)

	swept, err := svc.ReconcileOrphanedProgress()
	require.NoError(t, err)
	assert.Equal(t, int64(1), swept)

	var remaining []models.UserProgress
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].CourseID)

	// The sweep is idempotent
	swept, err = svc.ReconcileOrphanedProgress()
	require.NoError(t, err)
	assert.Zero(t, swept)
}
