package models

import "gorm.io/gorm"

// Course represents a learning course with bilingual titles and descriptions
type Course struct {
	gorm.Model
	TitleEn       string `json:"title_en"`
	TitleAm       string `json:"title_am"`
	DescriptionEn string `json:"description_en"`
	DescriptionAm string `json:"description_am"`
	Thumbnail     string `json:"thumbnail"` // optional image URL
	CreatedBy     uint   `json:"created_by" gorm:"index"`
}
