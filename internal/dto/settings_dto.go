package dto

type SettingsRequest struct {
	SiteName        string `json:"site_name"`
	SiteShortName   string `json:"site_short_name"`
	SiteDescription string `json:"site_description"`
	SiteURL         string `json:"site_url"`
	SiteLogo        string `json:"site_logo"`
	Favicon         string `json:"favicon"`
	ThemeColor      string `json:"theme_color"`
	DefaultLanguage string `json:"default_language"`
	ContactEmail    string `json:"contact_email"`
	GithubURL       string `json:"github_url"`
	LinkedinURL     string `json:"linkedin_url"`
	TwitterURL      string `json:"twitter_url"`
}
