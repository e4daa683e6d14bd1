package collinalitics

import (
	"encoding/json"
	"time"
)

// Timestamp represents a time that can be unmarshalled from the site
// API. Django serializes DateField values as bare dates and DateTime
// values with or without timezone information, so several layouts are
// tried.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler for Timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		return nil
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}

	var err error
	for _, layout := range layouts {
		var parsed time.Time
		parsed, err = time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return err
}

// MarshalJSON implements json.Marshaler for Timestamp.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// Project represents a portfolio case study.
type Project struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Summary string `json:"summary,omitempty"`

	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	HeroImageURL string `json:"hero_image_url,omitempty"`

	ClientName string     `json:"client_name,omitempty"`
	Industry   string     `json:"industry,omitempty"`
	Location   string     `json:"location,omitempty"`
	StartDate  *Timestamp `json:"start_date,omitempty"`
	EndDate    *Timestamp `json:"end_date,omitempty"`
	Status     string     `json:"status,omitempty"`

	Goals    string `json:"goals,omitempty"`
	Approach string `json:"approach,omitempty"`
	Outcomes string `json:"outcomes,omitempty"`
	Metrics  string `json:"metrics,omitempty"`

	// Raw comma-separated fields plus the derived lists the serializer
	// builds from them.
	Tools     string   `json:"tools,omitempty"`
	Tags      string   `json:"tags,omitempty"`
	ToolsList []string `json:"tools_list,omitempty"`
	TagsList  []string `json:"tags_list,omitempty"`
	Gallery   []string `json:"gallery,omitempty"`
}

// ProjectListOptions specifies the optional parameters to the
// ProjectsService.ListPage method.
type ProjectListOptions struct {
	ListOptions

	// Tag filters projects by a single tag
	Tag string `url:"tag,omitempty"`

	// Industry filters projects by industry
	Industry string `url:"industry,omitempty"`

	// Status filters projects by status
	Status string `url:"status,omitempty"`
}

// Service represents a service offering.
type Service struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	IsActive    bool   `json:"is_active,omitempty"`
	Order       int    `json:"order,omitempty"`

	// The category may be serialized under any of these keys depending
	// on which serializer produced the payload.
	Category     string `json:"category,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
	CategorySlug string `json:"category_slug,omitempty"`

	Features []ServiceFeature `json:"features,omitempty"`
	Projects []ProjectRef     `json:"projects,omitempty"`
}

// CategoryKey returns the first non-empty category value, regardless of
// which alternate key the server used. Callers chaining requests off a
// service's category should use this rather than any single field.
func (s *Service) CategoryKey() string {
	if s.Category != "" {
		return s.Category
	}
	if s.CategoryName != "" {
		return s.CategoryName
	}
	return s.CategorySlug
}

// ServiceFeature represents a single bullet-point feature of a service.
type ServiceFeature struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// ProjectRef is the abbreviated project record embedded in a service.
type ProjectRef struct {
	ID           int64  `json:"id"`
	Slug         string `json:"slug,omitempty"`
	Title        string `json:"title,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// ServiceListOptions specifies the optional parameters to the
// ServicesService.ListPage method.
type ServiceListOptions struct {
	ListOptions

	// Category filters services by category slug
	Category string `url:"category,omitempty"`

	// Search performs free-text search over title, excerpt and
	// description
	Search string `url:"search,omitempty"`
}

// RelatedServiceOptions specifies the parameters to the
// ServicesService.Related method.
type RelatedServiceOptions struct {
	// Category the services must belong to. An empty category yields
	// an empty result without a network call.
	Category string

	// ExcludeSlug removes the named service from the result, usually
	// the one currently being displayed.
	ExcludeSlug string

	// Limit truncates the result. Values < 1 default to 3.
	Limit int
}

// Post represents a blog post.
type Post struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content,omitempty"`
	ContentHTML string     `json:"content_html,omitempty"`
	Date        *Timestamp `json:"date,omitempty"`
	Author      string     `json:"author,omitempty"`
	TagsList    []string   `json:"tags_list,omitempty"`

	HeroImageURL  string `json:"hero_image_url,omitempty"`
	CoverImageURL string `json:"cover_image_url,omitempty"`
	ReadingTime   int    `json:"reading_time,omitempty"`
}

// PostListOptions specifies the optional parameters to the
// PostsService.ListPage method.
type PostListOptions struct {
	ListOptions

	// Q performs free-text search over posts
	Q string `url:"q,omitempty"`

	// Tag filters posts by a single tag
	Tag string `url:"tag,omitempty"`
}

// Inquiry represents a contact-form submission.
type Inquiry struct {
	ID        int64      `json:"id,omitempty"`
	CreatedAt *Timestamp `json:"created_at,omitempty"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`

	// Honeypot must stay empty; a filled value is rejected as spam.
	Honeypot string `json:"hp_field,omitempty"`
}

// ListOptions specifies the optional parameters to the various ListPage
// methods that support page-number pagination.
type ListOptions struct {
	// Page specifies the 1-based page of results to return.
	Page int `url:"page,omitempty"`
}
