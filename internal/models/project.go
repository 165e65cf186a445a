package models

import "time"

type Project struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"size:150;not null;index" json:"title"`
	Description     string    `gorm:"size:1000;not null" json:"description"`
	LongDescription string    `gorm:"type:text" json:"long_description"`
	Thumbnail       string    `gorm:"size:255" json:"thumbnail"`
	TechStack       string    `gorm:"size:255" json:"tech_stack"`
	LiveURL         string    `gorm:"size:255" json:"live_url"`
	GithubURL       string    `gorm:"size:255" json:"github_url"`
	SortOrder       int       `gorm:"default:0" json:"sort_order"`
	IsFeatured      bool      `gorm:"default:false" json:"is_featured"`
	IsActive        bool      `gorm:"not null" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
