package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz represents a multiple choice question attached to a module.
// Options are stored in both languages; CorrectAnswer holds the option
// index or exact value, whichever works for both renderings.
type Quiz struct {
	gorm.Model
	ModuleID      uint                         `json:"module_id" gorm:"index;not null"`
	QuestionEn    string                       `json:"question_en"`
	QuestionAm    string                       `json:"question_am"`
	OptionsEn     datatypes.JSONSlice[string]  `json:"options_en"`
	OptionsAm     datatypes.JSONSlice[string]  `json:"options_am"`
	CorrectAnswer string                       `json:"correct_answer"`
}
