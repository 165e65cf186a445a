package dto

type BlogRequest struct {
	Title          string `json:"title"`
	Slug           string `json:"slug"`
	Content        string `json:"content"`
	Excerpt        string `json:"excerpt"`
	CoverImage     string `json:"cover_image"`
	IsPublished    *bool  `json:"is_published"`
	PublishedAt    string `json:"published_at"`
	IsFeatured     *bool  `json:"is_featured"`
	ReadTime       int    `json:"read_time"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
	TagIDs         []uint `json:"tag_ids"`
}

type BlogTagRequest struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"is_active"`
}
