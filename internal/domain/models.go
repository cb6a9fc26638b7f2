package domain

import "time"

// JobPosting is a normalized job record from the portal catalog
type JobPosting struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	Location   string    `json:"location"`
	Salary     string    `json:"salary"`
	Experience string    `json:"experience"`
	WorkType   string    `json:"workType"`
	PostedBy   string    `json:"postedBy"`
	PostedAt   time.Time `json:"posted"`
	Ratings    float64   `json:"ratings"`

	KeySkills         []string `json:"keySkills"`
	EducationRequired []string `json:"educationRequired"`
	IndustryType      []string `json:"industryType"`
	Tags              []string `json:"tags"`

	Description      string `json:"description,omitempty"`
	Logo             string `json:"logo,omitempty"`
	Department       string `json:"department,omitempty"`
	Openings         int    `json:"openings,omitempty"`
	Applicants       int    `json:"applicants,omitempty"`
	JobHighlights    string `json:"jobHighlights,omitempty"`
	CompanyOverview  string `json:"companyOverview,omitempty"`
	Responsibilities string `json:"responsibilities,omitempty"`
}

// Company is an entry of the company directory
type Company struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Logo        string  `json:"logo,omitempty"`
	Slogan      string  `json:"slogan,omitempty"`
	Ratings     float64 `json:"ratings"`
	Reviews     int     `json:"reviews"`
	TopCompany  bool    `json:"topCompany"`
	Description string  `json:"description,omitempty"`
	Website     string  `json:"website,omitempty"`
}

// Notification is a user notification with local read state
type Notification struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Time   string `json:"time"`
	IsRead bool   `json:"isRead"`
}

// Role distinguishes job seekers from employers
type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
)

// Session is the signed-in user's credential set
type Session struct {
	Username string    `json:"username,omitempty"`
	Role     Role      `json:"role"`
	Access   string    `json:"access"`
	Refresh  string    `json:"refresh"`
	IssuedAt time.Time `json:"issuedAt"`
}
