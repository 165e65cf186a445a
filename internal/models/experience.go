package models

import "time"

type Experience struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:150;not null;index" json:"title"`
	Company     string     `gorm:"size:150;not null" json:"company"`
	Location    string     `gorm:"size:100;not null" json:"location"`
	StartDate   time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date"`
	Description string     `gorm:"size:2000" json:"description"`
	IsCurrent   bool       `gorm:"default:false" json:"is_current"`
	TechStack   string     `gorm:"size:255" json:"tech_stack"`
	SortOrder   int        `gorm:"default:0" json:"sort_order"`
	IsActive    bool       `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
