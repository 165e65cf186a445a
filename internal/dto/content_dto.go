package dto

type ProjectRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	LongDescription string `json:"long_description"`
	Thumbnail       string `json:"thumbnail"`
	TechStack       string `json:"tech_stack"`
	LiveURL         string `json:"live_url"`
	GithubURL       string `json:"github_url"`
	SortOrder       int    `json:"sort_order"`
	IsFeatured      *bool  `json:"is_featured"`
	IsActive        *bool  `json:"is_active"`
}

type SkillRequest struct {
	Name       string `json:"name"`
	Level      string `json:"level"`
	Image      string `json:"image"`
	CategoryID *uint  `json:"category_id"`
	SortOrder  int    `json:"sort_order"`
	IsActive   *bool  `json:"is_active"`
}

type SkillCategoryRequest struct {
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

type ExperienceRequest struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description string  `json:"description"`
	IsCurrent   *bool   `json:"is_current"`
	TechStack   string  `json:"tech_stack"`
	SortOrder   int     `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

type EducationRequest struct {
	Degree      string  `json:"degree"`
	Institution string  `json:"institution"`
	Location    string  `json:"location"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description string  `json:"description"`
	IsCurrent   *bool   `json:"is_current"`
	SortOrder   int     `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}
