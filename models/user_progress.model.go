package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Badge names and the point totals that unlock them
const (
	BadgeScholar   = "Ge'ez Scholar"
	BadgeMaster    = "Master Linguist"
	PointsPerLevel = 100
)

// UserProgress tracks gamified progression for one learner in one course.
// Points never decrease, badges and completed modules are append-only and
// CourseCompleted only ever flips false to true.
type UserProgress struct {
	gorm.Model
	UserID   uint  `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID uint  `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	ModuleID *uint `json:"module_id,omitempty"` // last-touched module, informational

	Points           int                         `json:"points" gorm:"default:0"`
	Level            int                         `json:"level" gorm:"default:1"`
	Badges           datatypes.JSONSlice[string] `json:"badges"`
	CompletedModules datatypes.JSONSlice[uint]   `json:"completed_modules"`
	CourseCompleted  bool                        `json:"course_completed" gorm:"default:false"`
}

// LevelFor derives the level from a point total
func LevelFor(points int) int {
	return points/PointsPerLevel + 1
}

// HasCompleted reports whether moduleID is already in the completed set
func (p *UserProgress) HasCompleted(moduleID uint) bool {
	for _, id := range p.CompletedModules {
		if id == moduleID {
			return true
		}
	}
	return false
}

// HasBadge reports whether the badge was already awarded
func (p *UserProgress) HasBadge(name string) bool {
	for _, b := range p.Badges {
		if b == name {
			return true
		}
	}
	return false
}
