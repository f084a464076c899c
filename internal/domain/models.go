package domain

import (
	"context"
	"strings"
)

// Post is a single submission pulled from a subreddit listing.
// Read-only once fetched; the watcher never mutates it.
type Post struct {
	Fullname string  `json:"name"`   // fully-qualified id, e.g. "t3_abc123"
	Domain   string  `json:"domain"` // "self.rust" for text posts, else link host
	URL      string  `json:"url"`
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	Created  float64 `json:"created_utc"`
}

// IsSelfPost reports whether the post is a text post with no external link.
func (p Post) IsSelfPost() bool {
	return strings.HasPrefix(p.Domain, "self.")
}

// Page is one window of a listing plus the cursor for the next window.
// After is empty when the API reports no further pages.
type Page struct {
	Posts []Post
	After string
}

// Collector fetches pages of new posts from a subreddit.
type Collector interface {
	FetchNewPosts(ctx context.Context, subreddit, after string) (Page, error)
}

// Replier submits a comment on the post identified by its fullname.
type Replier interface {
	SubmitComment(ctx context.Context, fullname, text string) error
}

// LicenseChecker classifies a repository as missing a license or not.
type LicenseChecker interface {
	MissingLicense(ctx context.Context, owner, name string) (bool, error)
}
