package models

import "time"

// Auth providers a user account can originate from.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
	ProviderGithub = "github"
)

// User is the admin/dashboard account. Local accounts carry a bcrypt hash;
// OAuth-created accounts carry the matching external ID and no hash.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name         string    `gorm:"size:150" json:"name"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	GoogleID     *string   `gorm:"size:255;index" json:"-"`
	GithubID     *string   `gorm:"size:255;index" json:"-"`
	Provider     string    `gorm:"size:20;not null;default:'local'" json:"provider"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
