package models

import "time"

// Skill proficiency levels.
const (
	SkillLevelBeginner     = "beginner"
	SkillLevelIntermediate = "intermediate"
	SkillLevelAdvanced     = "advanced"
	SkillLevelExpert       = "expert"
)

type Skill struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Level      string    `gorm:"size:20;not null;default:'beginner'" json:"level"`
	Image      string    `gorm:"size:255" json:"image"`
	CategoryID *uint     `gorm:"index" json:"category_id"`
	SortOrder  int       `gorm:"default:0" json:"sort_order"`
	IsActive   bool      `gorm:"not null" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type SkillCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	Skills    []Skill   `gorm:"foreignKey:CategoryID" json:"skills,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SkillCategory) TableName() string {
	return "skill_categories"
}
