package models

import "gorm.io/gorm"

// CourseCategory groups courses for the website catalog
type CourseCategory struct {
	gorm.Model
	CategoryName string `json:"category_name" gorm:"not null"`
	IsDeleted    bool   `gorm:"default:false"`
}
