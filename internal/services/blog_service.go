package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/devfolio/portfolio-backend/internal/dto"
	"github.com/devfolio/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

var ErrSlugTaken = errors.New("a blog with this slug already exists")

type BlogService struct {
	db *gorm.DB
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{db: db}
}

// List returns published posts for the public site; the dashboard passes
// publicOnly=false and sees drafts too.
func (s *BlogService) List(publicOnly bool) ([]models.Blog, error) {
	var blogs []models.Blog
	query := s.db.Preload("Tags").Order("created_at DESC")
	if publicOnly {
		query = query.Scopes(models.Published)
	}
	err := query.Find(&blogs).Error
	return blogs, err
}

func (s *BlogService) GetByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := s.db.Preload("Tags").First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// GetBySlug serves the public post page; drafts are invisible here. Each
// read bumps the view counter.
func (s *BlogService) GetBySlug(slug string) (*models.Blog, error) {
	var blog models.Blog
	err := s.db.Preload("Tags").Scopes(models.Published).
		Where("slug = ?", slug).First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.db.Model(&blog).Update("view_count", gorm.Expr("view_count + 1"))
	blog.ViewCount++

	return &blog, nil
}

func (s *BlogService) Create(req *dto.BlogRequest) (*models.Blog, error) {
	if req.Title == "" || req.Slug == "" || req.Content == "" {
		return nil, errors.New("title, slug and content are required")
	}

	var existing models.Blog
	if err := s.db.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		return nil, ErrSlugTaken
	}

	tags, err := s.findTags(req.TagIDs)
	if err != nil {
		return nil, err
	}

	publishedAt := time.Now()
	if req.PublishedAt != "" {
		if t, err := time.Parse(time.RFC3339, req.PublishedAt); err == nil {
			publishedAt = t
		}
	}

	blog := models.Blog{
		Title:          req.Title,
		Slug:           req.Slug,
		Content:        req.Content,
		Excerpt:        req.Excerpt,
		CoverImage:     req.CoverImage,
		IsPublished:    req.IsPublished != nil && *req.IsPublished,
		PublishedAt:    publishedAt,
		IsFeatured:     req.IsFeatured != nil && *req.IsFeatured,
		ReadTime:       req.ReadTime,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		Tags:           tags,
	}

	if err := s.db.Create(&blog).Error; err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}
	return &blog, nil
}

func (s *BlogService) Update(id uint, req *dto.BlogRequest) (*models.Blog, error) {
	blog, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Slug != blog.Slug {
		var existing models.Blog
		if err := s.db.Where("slug = ? AND id <> ?", req.Slug, id).First(&existing).Error; err == nil {
			return nil, ErrSlugTaken
		}
	}

	tags, err := s.findTags(req.TagIDs)
	if err != nil {
		return nil, err
	}

	blog.Title = req.Title
	blog.Slug = req.Slug
	blog.Content = req.Content
	blog.Excerpt = req.Excerpt
	blog.CoverImage = req.CoverImage
	if req.IsPublished != nil {
		blog.IsPublished = *req.IsPublished
	}
	if req.PublishedAt != "" {
		if t, err := time.Parse(time.RFC3339, req.PublishedAt); err == nil {
			blog.PublishedAt = t
		}
	}
	if req.IsFeatured != nil {
		blog.IsFeatured = *req.IsFeatured
	}
	blog.ReadTime = req.ReadTime
	blog.SEOTitle = req.SEOTitle
	blog.SEODescription = req.SEODescription

	if err := s.db.Save(blog).Error; err != nil {
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}
	if err := s.db.Model(blog).Association("Tags").Replace(tags); err != nil {
		return nil, fmt.Errorf("failed to update blog tags: %w", err)
	}
	blog.Tags = tags

	return blog, nil
}

func (s *BlogService) Delete(id uint) error {
	blog, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Model(blog).Association("Tags").Clear(); err != nil {
		return err
	}
	return s.db.Delete(blog).Error
}

func (s *BlogService) findTags(ids []uint) ([]models.BlogTag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.BlogTag
	if err := s.db.Find(&tags, ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}
	return tags, nil
}

// --- Tags ---

func (s *BlogService) ListTags() ([]models.BlogTag, error) {
	var tags []models.BlogTag
	err := s.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

func (s *BlogService) CreateTag(req *dto.BlogTagRequest) (*models.BlogTag, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	var existing models.BlogTag
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, errors.New("a tag with this name already exists")
	}

	tag := models.BlogTag{
		Name:     req.Name,
		IsActive: req.IsActive == nil || *req.IsActive,
	}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return &tag, nil
}

func (s *BlogService) UpdateTag(id uint, req *dto.BlogTagRequest) (*models.BlogTag, error) {
	var tag models.BlogTag
	if err := s.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	tag.Name = req.Name
	if req.IsActive != nil {
		tag.IsActive = *req.IsActive
	}
	if err := s.db.Save(&tag).Error; err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return &tag, nil
}

func (s *BlogService) DeleteTag(id uint) error {
	result := s.db.Delete(&models.BlogTag{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
