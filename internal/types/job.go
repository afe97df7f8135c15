package types

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Kind selects which extractor runs for a job.
type Kind string

// Supported extraction kinds.
const (
	KindProfile Kind = "profile"
	KindContact Kind = "contact"
	KindNews    Kind = "news"
)

// ParseKind validates a raw kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindProfile, KindContact, KindNews:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown extraction kind: %q", s)
}

// Job statuses. There is no failed state: failures are absorbed into a
// completed result carrying high-priority insights.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Job tracks one extraction request from creation to completion.
type Job struct {
	ID        string          `json:"id"`
	URL       string          `json:"url"`
	Kind      Kind            `json:"kind"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Result    json.RawMessage `json:"result,omitempty"`
}

// NewJobID derives a human-traceable job id from the URL's host and a
// creation timestamp. Unparseable URLs fall back to a fixed host token
// so that even a failed extraction gets a persisted job record.
func NewJobID(rawURL string, at time.Time) string {
	host := "unknown-site"
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = strings.ReplaceAll(u.Host, ".", "-")
	}
	return fmt.Sprintf("%s-%d", host, at.UnixMilli())
}
