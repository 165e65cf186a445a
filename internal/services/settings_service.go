package services

import (
	"errors"
	"fmt"

	"github.com/devfolio/portfolio-backend/internal/dto"
	"github.com/devfolio/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSettingsExist    = errors.New("settings already exist, use update instead")
	ErrSettingsNotFound = errors.New("settings not found, create them first")
)

// SettingsService manages the single site settings row.
type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

func (s *SettingsService) Get() (*models.Settings, error) {
	var settings models.Settings
	if err := s.db.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}
	return &settings, nil
}

func (s *SettingsService) Create(req *dto.SettingsRequest) (*models.Settings, error) {
	if req.SiteName == "" {
		return nil, errors.New("site_name is required")
	}

	var existing models.Settings
	if err := s.db.First(&existing).Error; err == nil {
		return nil, ErrSettingsExist
	}

	settings := models.Settings{}
	applySettings(&settings, req)

	if err := s.db.Create(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to create settings: %w", err)
	}
	return &settings, nil
}

func (s *SettingsService) Update(req *dto.SettingsRequest) (*models.Settings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	applySettings(settings, req)

	if err := s.db.Save(settings).Error; err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}

func applySettings(settings *models.Settings, req *dto.SettingsRequest) {
	settings.SiteName = req.SiteName
	settings.SiteShortName = req.SiteShortName
	settings.SiteDescription = req.SiteDescription
	settings.SiteURL = req.SiteURL
	settings.SiteLogo = req.SiteLogo
	settings.Favicon = req.Favicon
	settings.ThemeColor = req.ThemeColor
	if req.DefaultLanguage != "" {
		settings.DefaultLanguage = req.DefaultLanguage
	}
	settings.ContactEmail = req.ContactEmail
	settings.GithubURL = req.GithubURL
	settings.LinkedinURL = req.LinkedinURL
	settings.TwitterURL = req.TwitterURL
}
