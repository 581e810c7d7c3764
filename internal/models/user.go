package models

import "gorm.io/gorm"

// User is a staff account (reviewer or admin) on the permit platform.
// Applicants requesting public fee estimates are not represented here.
type User struct {
	gorm.Model
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	Password     string `json:"-" gorm:"not null"`
	Name         string `json:"name"`
	Role         string `json:"role" gorm:"default:'reviewer'"`
	TokenVersion int    `json:"-" gorm:"default:1"`
}
