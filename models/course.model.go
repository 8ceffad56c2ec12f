package models

import "gorm.io/gorm"

// Course represents a listed course on the website
type Course struct {
	gorm.Model
	Name       string  `json:"course" gorm:"not null"`
	Details    string  `json:"coursedetails"`
	Duration   string  `json:"courseduration"`
	Fee        float64 `json:"coursefee" gorm:"default:0"`
	CategoryID *uint   `json:"coursecategory"`
	CouponID   *uint   `json:"coursecouponid"`
	Image      string  `json:"courseimage"` // filename under the uploads dir
	IsDeleted  bool    `gorm:"default:false"`

	Category *CourseCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
