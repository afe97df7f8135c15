// Package types provides type definitions for structured extraction data
// shared across the brandscope pipeline.
package types

import "time"

// Insight priorities, ordered by severity.
const (
	PriorityInfo   = "info"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Insight is a machine-generated annotation describing extraction
// confidence or a detected gap. Every result carries at least an empty
// insight list; failures surface here rather than as errors.
type Insight struct {
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
}

// SocialLink is a detected social media presence.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Product is a product or offer detected on a page.
type Product struct {
	Name        string `json:"name"`
	Price       string `json:"price,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// NewsItem is a single news or blog entry detected on a page.
type NewsItem struct {
	NewsTitle   string `json:"newsTitle"`
	NewsDate    string `json:"newsDate"`
	NewsContent string `json:"newsContent"`
	NewsURL     string `json:"newsUrl,omitempty"`
}

// ProfileResult is the base extraction result: brand identity, industry,
// social presence and product listing. Error is only set for the single
// unrecoverable case (malformed input URL).
type ProfileResult struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Industry    string       `json:"industry"`
	Website     string       `json:"website"`
	SocialLinks []SocialLink `json:"socialLinks"`
	Products    []Product    `json:"products"`
	Insights    []Insight    `json:"insights"`
	ScrapedAt   time.Time    `json:"scrapedAt"`
	Error       string       `json:"error,omitempty"`
}

// ContactResult extends ProfileResult with contact channels.
type ContactResult struct {
	ProfileResult
	ContactEmail string   `json:"contactEmail"`
	AllEmails    []string `json:"allEmails"`
	ContactPhone string   `json:"contactPhone"`
	AllPhones    []string `json:"allPhones"`
	Address      string   `json:"address"`
}

// NewsResult extends ProfileResult with recent news items and a
// frequency-ranked keyword summary.
type NewsResult struct {
	ProfileResult
	NewsItems []NewsItem `json:"newsItems"`
	Keywords  []string   `json:"keywords"`
}

// Result is implemented by all extraction result variants.
type Result interface {
	// Profile returns the embedded base result.
	Profile() *ProfileResult
}

// Profile implements Result.
func (r *ProfileResult) Profile() *ProfileResult { return r }

// Profile implements Result.
func (r *ContactResult) Profile() *ProfileResult { return &r.ProfileResult }

// Profile implements Result.
func (r *NewsResult) Profile() *ProfileResult { return &r.ProfileResult }

// AddInsight appends an insight to the result.
func (r *ProfileResult) AddInsight(insightType, priority, message string) {
	r.Insights = append(r.Insights, Insight{
		Type:     insightType,
		Priority: priority,
		Message:  message,
	})
}
