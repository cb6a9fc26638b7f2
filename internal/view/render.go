package view

import (
	"fmt"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/internal/pagination"
)

// JobCard is a job posting prepared for display
type JobCard struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Salary      string   `json:"salary"`
	Experience  string   `json:"experience"`
	WorkType    string   `json:"workType"`
	PostedBy    string   `json:"postedBy"`
	Posted      string   `json:"posted"`
	Ratings     float64  `json:"ratings"`
	KeySkills   []string `json:"keySkills"`
	Tags        []string `json:"tags"`
	Logo        string   `json:"logo,omitempty"`
	Openings    int      `json:"openings,omitempty"`
	Applicants  int      `json:"applicants,omitempty"`
	Description string   `json:"description,omitempty"`
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// Card applies display placeholders and converts an HTML description
// to markdown. now anchors the "posted" label. Placeholders are display-only:
// facets and filters see the empty normalized value.
func Card(job domain.JobPosting, now time.Time) JobCard {
	return JobCard{
		ID:          job.ID,
		Title:       orDefault(job.Title, "Untitled Position"),
		Company:     orDefault(job.Company, "Unknown Company"),
		Location:    orDefault(job.Location, "Remote"),
		Salary:      orDefault(job.Salary, "Not disclosed"),
		Experience:  orDefault(job.Experience, "0 years"),
		WorkType:    orDefault(job.WorkType, "Full-time"),
		PostedBy:    orDefault(job.PostedBy, "Company"),
		Posted:      PostedLabel(job.PostedAt, now),
		Ratings:     job.Ratings,
		KeySkills:   job.KeySkills,
		Tags:        job.Tags,
		Logo:        job.Logo,
		Openings:    job.Openings,
		Applicants:  job.Applicants,
		Description: Markdown(job.Description),
	}
}

// Cards renders a page of postings
func Cards(jobs []domain.JobPosting, now time.Time) []JobCard {
	out := make([]JobCard, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, Card(j, now))
	}
	return out
}

// PostedLabel is the freshness bucket with its first letter capitalized
func PostedLabel(postedAt, now time.Time) string {
	b := catalog.FreshnessBucket(postedAt, now)
	return strings.ToUpper(b[:1]) + b[1:]
}

// Markdown converts an HTML fragment to markdown. Plain text and
// unconvertible input come back trimmed but otherwise unchanged.
func Markdown(html string) string {
	html = strings.TrimSpace(html)
	if html == "" || !strings.Contains(html, "<") {
		return html
	}
	md, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return html
	}
	return strings.TrimSpace(md)
}

// PageInfo describes the paginator under a list
type PageInfo struct {
	Page       int                `json:"page"`
	TotalPages int                `json:"totalPages"`
	Total      int                `json:"total"`
	HasPrev    bool               `json:"hasPrev"`
	HasNext    bool               `json:"hasNext"`
	Labels     []pagination.Label `json:"labels"`
}

func pageInfo(c pagination.Cursor, total int) PageInfo {
	return PageInfo{
		Page:       c.Page(),
		TotalPages: c.TotalPages(),
		Total:      total,
		HasPrev:    c.HasPrev(),
		HasNext:    c.HasNext(),
		Labels:     c.Labels(),
	}
}

// SearchPage is the rendered search view
type SearchPage struct {
	Loading bool                                   `json:"loading"`
	Jobs    []JobCard                              `json:"jobs"`
	Facets  map[catalog.Facet][]catalog.FacetCount `json:"facets"`
	Applied catalog.AppliedFilters                 `json:"applied"`
	Sidebar catalog.SidebarFilters                 `json:"sidebar"`
	Sort    catalog.SortKey                        `json:"sort"`
	Paging  PageInfo                               `json:"paging"`
}

// Render builds the display form of the search view
func (s Search) Render() SearchPage {
	return SearchPage{
		Loading: s.Loading,
		Jobs:    Cards(s.Page(), s.LoadedAt),
		Facets:  s.VisibleFacets(),
		Applied: s.Applied,
		Sidebar: s.Sidebar,
		Sort:    s.Sort,
		Paging:  pageInfo(s.Cursor, len(s.Results)),
	}
}

// ListPage is the rendered form of a job list view
type ListPage struct {
	Loading bool            `json:"loading"`
	Company *domain.Company `json:"company,omitempty"`
	Jobs    []JobCard       `json:"jobs"`
	Paging  PageInfo        `json:"paging"`
}

// Render builds the display form of the list
func (l List) Render() ListPage {
	return ListPage{
		Loading: l.Loading,
		Company: l.Company,
		Jobs:    Cards(l.Page(), l.LoadedAt),
		Paging:  pageInfo(l.Cursor, len(l.Jobs)),
	}
}

// MarkdownTable renders job cards as a markdown table for text clients
func MarkdownTable(cards []JobCard, paging PageInfo) string {
	var b strings.Builder

	if len(cards) == 0 {
		b.WriteString("No jobs found.\n")
	} else {
		b.WriteString("| # | Title | Company | Location | Experience | Salary | Posted | Rating |\n")
		b.WriteString("|---|---|---|---|---|---|---|---|\n")
		for _, c := range cards {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %.1f |\n",
				cell(c.ID), cell(c.Title), cell(c.Company), cell(c.Location),
				cell(c.Experience), cell(c.Salary), cell(c.Posted), c.Ratings)
		}
	}

	fmt.Fprintf(&b, "\nPage %d of %d (%d jobs): %s\n", paging.Page, paging.TotalPages, paging.Total, labelsText(paging.Labels, paging.Page))
	return b.String()
}

func cell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "|", `\|`), "\n", " ")
}

func labelsText(labels []pagination.Label, current int) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		switch {
		case l.Ellipsis:
			parts = append(parts, "...")
		case l.Page == current:
			parts = append(parts, fmt.Sprintf("[%d]", l.Page))
		default:
			parts = append(parts, fmt.Sprint(l.Page))
		}
	}
	return strings.Join(parts, " ")
}
