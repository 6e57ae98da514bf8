package models

import "gorm.io/gorm"

// Module represents a unit of course content (lecture text, optional video)
type Module struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	TitleEn    string `json:"title_en"`
	TitleAm    string `json:"title_am"`
	ContentEn  string `json:"content_en" gorm:"type:text"`
	ContentAm  string `json:"content_am" gorm:"type:text"`
	VideoURL   string `json:"video_url"`
	OrderIndex int    `json:"order_index" gorm:"default:0"` // Module order in course
}
