package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleStudent = "student"
	RoleMentor  = "mentor"
	RoleAdmin   = "admin"
)

// User account statuses
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

type User struct {
	gorm.Model
	Email       string     `json:"email" gorm:"uniqueIndex;not null"`
	Username    string     `json:"username" gorm:"uniqueIndex;not null"`
	FullName    string     `json:"full_name" gorm:"not null"`
	Password    string     `json:"-" gorm:"not null"`
	Role        string     `json:"role" gorm:"default:'student'"`
	Status      string     `json:"status" gorm:"default:'active'"`
	AvatarURL   string     `json:"avatar_url"`
	Bio         string     `json:"bio"`
	Phone       string     `json:"phone"`
	LinkedinURL string     `json:"linkedin_url"`
	GithubURL   string     `json:"github_url"`
	IsVerified  bool       `json:"is_verified" gorm:"default:false"`
	LastLogin   *time.Time `json:"last_login"`
}
