package services

import (
	"errors"
	"fmt"

	"github.com/devfolio/portfolio-backend/internal/dto"
	"github.com/devfolio/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// List returns all projects for the dashboard, or only active ones for the
// public site.
func (s *ProjectService) List(publicOnly bool) ([]models.Project, error) {
	var projects []models.Project
	query := s.db.Scopes(models.BySortOrder)
	if publicOnly {
		query = query.Scopes(models.Active)
	}
	err := query.Find(&projects).Error
	return projects, err
}

func (s *ProjectService) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) Create(req *dto.ProjectRequest) (*models.Project, error) {
	if req.Title == "" {
		return nil, errors.New("title is required")
	}

	project := models.Project{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Thumbnail:       req.Thumbnail,
		TechStack:       req.TechStack,
		LiveURL:         req.LiveURL,
		GithubURL:       req.GithubURL,
		SortOrder:       req.SortOrder,
		IsFeatured:      req.IsFeatured != nil && *req.IsFeatured,
		IsActive:        req.IsActive == nil || *req.IsActive,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}

func (s *ProjectService) Update(id uint, req *dto.ProjectRequest) (*models.Project, error) {
	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	project.Title = req.Title
	project.Description = req.Description
	project.LongDescription = req.LongDescription
	project.Thumbnail = req.Thumbnail
	project.TechStack = req.TechStack
	project.LiveURL = req.LiveURL
	project.GithubURL = req.GithubURL
	project.SortOrder = req.SortOrder
	if req.IsFeatured != nil {
		project.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}

	if err := s.db.Save(project).Error; err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) Delete(id uint) error {
	project, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.db.Delete(project).Error
}
