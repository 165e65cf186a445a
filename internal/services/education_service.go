package services

import (
	"errors"
	"fmt"

	"github.com/devfolio/portfolio-backend/internal/dto"
	"github.com/devfolio/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

type EducationService struct {
	db *gorm.DB
}

func NewEducationService(db *gorm.DB) *EducationService {
	return &EducationService{db: db}
}

func (s *EducationService) List(publicOnly bool) ([]models.Education, error) {
	var educations []models.Education
	query := s.db.Scopes(models.BySortOrder)
	if publicOnly {
		query = query.Scopes(models.Active)
	}
	err := query.Find(&educations).Error
	return educations, err
}

func (s *EducationService) Create(req *dto.EducationRequest) (*models.Education, error) {
	if req.Degree == "" || req.Institution == "" {
		return nil, errors.New("degree and institution are required")
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	education := models.Education{
		Degree:      req.Degree,
		Institution: req.Institution,
		Location:    req.Location,
		StartDate:   start,
		EndDate:     end,
		Description: req.Description,
		IsCurrent:   req.IsCurrent != nil && *req.IsCurrent,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}

	if err := s.db.Create(&education).Error; err != nil {
		return nil, fmt.Errorf("failed to create education: %w", err)
	}
	return &education, nil
}

func (s *EducationService) Update(id uint, req *dto.EducationRequest) (*models.Education, error) {
	var education models.Education
	if err := s.db.First(&education, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	education.Degree = req.Degree
	education.Institution = req.Institution
	education.Location = req.Location
	education.StartDate = start
	education.EndDate = end
	education.Description = req.Description
	if req.IsCurrent != nil {
		education.IsCurrent = *req.IsCurrent
	}
	education.SortOrder = req.SortOrder
	if req.IsActive != nil {
		education.IsActive = *req.IsActive
	}

	if err := s.db.Save(&education).Error; err != nil {
		return nil, fmt.Errorf("failed to update education: %w", err)
	}
	return &education, nil
}

func (s *EducationService) Delete(id uint) error {
	result := s.db.Delete(&models.Education{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
