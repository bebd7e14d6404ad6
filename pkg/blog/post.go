package blog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("blog")

const (
	// StatusPublished is the default lifecycle status of a new post.
	StatusPublished = "published"
	// DefaultCategory is assigned when a post is created without one.
	DefaultCategory = "general"
	// expiryGrace is how long a post outlives its end date before the
	// table's native TTL mechanism removes it.
	expiryGrace = 7 * 24 * time.Hour
)

// Post is a single blog entry as persisted in the table store. Images holds
// blob store keys in the order the files were submitted.
type Post struct {
	ID             string   `json:"id" dynamodbav:"id"`
	Title          string   `json:"title" dynamodbav:"title"`
	HTMLContent    string   `json:"htmlContent" dynamodbav:"htmlContent"`
	ContentSummary string   `json:"contentSummary,omitempty" dynamodbav:"contentSummary,omitempty"`
	StartDate      string   `json:"startDate,omitempty" dynamodbav:"startDate,omitempty"`
	EndDate        string   `json:"endDate,omitempty" dynamodbav:"endDate,omitempty"`
	Category       string   `json:"category" dynamodbav:"category"`
	Status         string   `json:"status" dynamodbav:"status"`
	Images         []string `json:"images,omitempty" dynamodbav:"images,omitempty"`
	CreatedAt      string   `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt      string   `json:"updatedAt" dynamodbav:"updatedAt"`
	PublishedAt    string   `json:"publishedAt" dynamodbav:"publishedAt"`
	TTL            int64    `json:"-" dynamodbav:"ttl,omitempty"`
}

// ValidationError indicates required input was missing or malformed.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Params are the caller supplied fields for a new post.
type Params struct {
	Title          string
	HTMLContent    string
	ContentSummary string
	StartDate      string
	EndDate        string
	Category       string
	Status         string
}

// NewPost validates params and builds a Post with a fresh id and timestamps.
// An EndDate that does not parse as an ISO-8601 date is logged and the TTL
// omitted; it is not a validation failure.
func NewPost(params Params) (Post, error) {
	if params.Title == "" || params.HTMLContent == "" {
		return Post{}, &ValidationError{Msg: "Title and content are required."}
	}

	status := params.Status
	if status == "" {
		status = StatusPublished
	}
	category := params.Category
	if category == "" {
		category = DefaultCategory
	}

	now := time.Now().UTC().Format(time.RFC3339)
	post := Post{
		ID:             uuid.NewString(),
		Title:          params.Title,
		HTMLContent:    params.HTMLContent,
		ContentSummary: params.ContentSummary,
		StartDate:      params.StartDate,
		EndDate:        params.EndDate,
		Category:       category,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
		PublishedAt:    now,
	}

	if params.EndDate != "" {
		end, err := parseISODate(params.EndDate)
		if err != nil {
			log.Warnf("invalid endDate format: %s (%s)", params.EndDate, err)
		} else {
			post.TTL = end.Add(expiryGrace).Unix()
		}
	}

	return post, nil
}

func parseISODate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %s", value)
}
