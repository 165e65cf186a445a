package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/devfolio/portfolio-backend/internal/dto"
	"github.com/devfolio/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type ExperienceService struct {
	db *gorm.DB
}

func NewExperienceService(db *gorm.DB) *ExperienceService {
	return &ExperienceService{db: db}
}

func (s *ExperienceService) List(publicOnly bool) ([]models.Experience, error) {
	var experiences []models.Experience
	query := s.db.Scopes(models.BySortOrder)
	if publicOnly {
		query = query.Scopes(models.Active)
	}
	err := query.Find(&experiences).Error
	return experiences, err
}

func (s *ExperienceService) Create(req *dto.ExperienceRequest) (*models.Experience, error) {
	if req.Title == "" || req.Company == "" {
		return nil, errors.New("title and company are required")
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	experience := models.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		StartDate:   start,
		EndDate:     end,
		Description: req.Description,
		IsCurrent:   req.IsCurrent != nil && *req.IsCurrent,
		TechStack:   req.TechStack,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}

	if err := s.db.Create(&experience).Error; err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	return &experience, nil
}

func (s *ExperienceService) Update(id uint, req *dto.ExperienceRequest) (*models.Experience, error) {
	var experience models.Experience
	if err := s.db.First(&experience, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	experience.Title = req.Title
	experience.Company = req.Company
	experience.Location = req.Location
	experience.StartDate = start
	experience.EndDate = end
	experience.Description = req.Description
	if req.IsCurrent != nil {
		experience.IsCurrent = *req.IsCurrent
	}
	experience.TechStack = req.TechStack
	experience.SortOrder = req.SortOrder
	if req.IsActive != nil {
		experience.IsActive = *req.IsActive
	}

	if err := s.db.Save(&experience).Error; err != nil {
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	return &experience, nil
}

func (s *ExperienceService) Delete(id uint) error {
	result := s.db.Delete(&models.Experience{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func parseDateRange(startStr string, endStr *string) (time.Time, *time.Time, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("invalid start_date, expected YYYY-MM-DD: %w", err)
	}

	var end *time.Time
	if endStr != nil && *endStr != "" {
		t, err := time.Parse(dateLayout, *endStr)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("invalid end_date, expected YYYY-MM-DD: %w", err)
		}
		end = &t
	}
	return start, end, nil
}
