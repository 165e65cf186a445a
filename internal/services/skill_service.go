package services

import (
	"errors"
	"fmt"

	"github.com/devfolio/portfolio-backend/internal/dto"
	"github.com/devfolio/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

var validSkillLevels = map[string]bool{
	models.SkillLevelBeginner:     true,
	models.SkillLevelIntermediate: true,
	models.SkillLevelAdvanced:     true,
	models.SkillLevelExpert:       true,
}

type SkillService struct {
	db *gorm.DB
}

func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{db: db}
}

func (s *SkillService) List(publicOnly bool) ([]models.Skill, error) {
	var skills []models.Skill
	query := s.db.Scopes(models.BySortOrder)
	if publicOnly {
		query = query.Scopes(models.Active)
	}
	err := query.Find(&skills).Error
	return skills, err
}

func (s *SkillService) Create(req *dto.SkillRequest) (*models.Skill, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	level := req.Level
	if level == "" {
		level = models.SkillLevelBeginner
	}
	if !validSkillLevels[level] {
		return nil, fmt.Errorf("invalid skill level: %s", level)
	}

	skill := models.Skill{
		Name:       req.Name,
		Level:      level,
		Image:      req.Image,
		CategoryID: req.CategoryID,
		SortOrder:  req.SortOrder,
		IsActive:   req.IsActive == nil || *req.IsActive,
	}

	if err := s.db.Create(&skill).Error; err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return &skill, nil
}

func (s *SkillService) Update(id uint, req *dto.SkillRequest) (*models.Skill, error) {
	var skill models.Skill
	if err := s.db.First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Level != "" && !validSkillLevels[req.Level] {
		return nil, fmt.Errorf("invalid skill level: %s", req.Level)
	}

	skill.Name = req.Name
	if req.Level != "" {
		skill.Level = req.Level
	}
	skill.Image = req.Image
	skill.CategoryID = req.CategoryID
	skill.SortOrder = req.SortOrder
	if req.IsActive != nil {
		skill.IsActive = *req.IsActive
	}

	if err := s.db.Save(&skill).Error; err != nil {
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return &skill, nil
}

func (s *SkillService) Delete(id uint) error {
	result := s.db.Delete(&models.Skill{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Categories ---

func (s *SkillService) ListCategories(publicOnly bool) ([]models.SkillCategory, error) {
	var categories []models.SkillCategory
	query := s.db.Scopes(models.BySortOrder).Preload("Skills")
	if publicOnly {
		query = query.Scopes(models.Active)
	}
	err := query.Find(&categories).Error
	return categories, err
}

func (s *SkillService) CreateCategory(req *dto.SkillCategoryRequest) (*models.SkillCategory, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	category := models.SkillCategory{
		Name:      req.Name,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive == nil || *req.IsActive,
	}

	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create skill category: %w", err)
	}
	return &category, nil
}

func (s *SkillService) UpdateCategory(id uint, req *dto.SkillCategoryRequest) (*models.SkillCategory, error) {
	var category models.SkillCategory
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	category.Name = req.Name
	category.SortOrder = req.SortOrder
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.db.Save(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to update skill category: %w", err)
	}
	return &category, nil
}

func (s *SkillService) DeleteCategory(id uint) error {
	result := s.db.Delete(&models.SkillCategory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
