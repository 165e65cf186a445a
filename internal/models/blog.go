package models

import "time"

type Blog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Slug           string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	Excerpt        string    `gorm:"size:1000" json:"excerpt"`
	CoverImage     string    `gorm:"size:1000" json:"cover_image"`
	IsPublished    bool      `gorm:"default:false" json:"is_published"`
	PublishedAt    time.Time `json:"published_at"`
	IsFeatured     bool      `gorm:"default:false" json:"is_featured"`
	ReadTime       int       `gorm:"default:0" json:"read_time"`
	SEOTitle       string    `gorm:"size:255" json:"seo_title"`
	SEODescription string    `gorm:"size:500" json:"seo_description"`
	ViewCount      int       `gorm:"default:0" json:"view_count"`
	Tags           []BlogTag `gorm:"many2many:blog_tag_relations" json:"tags"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type BlogTag struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	UsageCount int       `gorm:"default:0" json:"usage_count"`
	IsActive   bool      `gorm:"not null" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
