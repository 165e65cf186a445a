package models

import "time"

// Settings holds the site-wide configuration. The service layer enforces
// that at most one row ever exists.
type Settings struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	SiteName        string    `gorm:"size:255;not null" json:"site_name"`
	SiteShortName   string    `gorm:"size:100" json:"site_short_name"`
	SiteDescription string    `gorm:"size:1000" json:"site_description"`
	SiteURL         string    `gorm:"size:255" json:"site_url"`
	SiteLogo        string    `gorm:"size:255" json:"site_logo"`
	Favicon         string    `gorm:"size:255" json:"favicon"`
	ThemeColor      string    `gorm:"size:20" json:"theme_color"`
	DefaultLanguage string    `gorm:"size:10;default:'en'" json:"default_language"`
	ContactEmail    string    `gorm:"size:255" json:"contact_email"`
	GithubURL       string    `gorm:"size:255" json:"github_url"`
	LinkedinURL     string    `gorm:"size:255" json:"linkedin_url"`
	TwitterURL      string    `gorm:"size:255" json:"twitter_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Settings) TableName() string {
	return "settings"
}
