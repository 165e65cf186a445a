package models

import "time"

type Education struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Degree      string     `gorm:"size:255;not null;index" json:"degree"`
	Institution string     `gorm:"size:255;not null" json:"institution"`
	Location    string     `gorm:"size:255" json:"location"`
	StartDate   time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date"`
	Description string     `gorm:"type:text" json:"description"`
	IsCurrent   bool       `gorm:"default:false" json:"is_current"`
	SortOrder   int        `gorm:"default:0" json:"sort_order"`
	IsActive    bool       `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
