package collector

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/loganintech/go-reddit/v2/reddit"
	"github.com/qepting91/license-bot/internal/domain"
	"golang.org/x/time/rate"
)

// APIClient fetches listings and submits replies through the go-reddit
// library, which manages the OAuth handshake itself.
type APIClient struct {
	client  *reddit.Client
	limiter *rate.Limiter
}

func NewAPIClient(id, secret, user, pass, userAgent string) (*APIClient, error) {
	creds := reddit.Credentials{ID: id, Secret: secret, Username: user, Password: pass}

	client, err := reddit.NewClient(creds, reddit.WithUserAgent(userAgent))
	if err != nil {
		return nil, err
	}

	// API Rate Limit: ~60 reqs/min (safe buffer)
	limiter := rate.NewLimiter(rate.Every(1*time.Second), 1)

	return &APIClient{client: client, limiter: limiter}, nil
}

func (ac *APIClient) FetchNewPosts(ctx context.Context, subreddit, after string) (domain.Page, error) {
	if err := ac.limiter.Wait(ctx); err != nil {
		return domain.Page{}, err
	}

	posts, resp, err := ac.client.Subreddit.NewPosts(ctx, subreddit, &reddit.ListOptions{Limit: 100, After: after})
	if err != nil {
		return domain.Page{}, fmt.Errorf("authenticated api error: %w", err)
	}

	page := domain.Page{After: resp.After}
	for _, p := range posts {
		page.Posts = append(page.Posts, domain.Post{
			Fullname: p.FullID,
			Domain:   postDomain(p),
			URL:      p.URL,
			Title:    p.Title,
			Author:   p.Author,
			Created:  float64(p.Created.Time.Unix()),
		})
	}
	return page, nil
}

func (ac *APIClient) SubmitComment(ctx context.Context, fullname, text string) error {
	if err := ac.limiter.Wait(ctx); err != nil {
		return err
	}
	if _, _, err := ac.client.Comment.Submit(ctx, fullname, text); err != nil {
		return fmt.Errorf("authenticated api error: %w", err)
	}
	return nil
}

// postDomain reconstructs the listing's domain field, which the library does
// not expose directly: self posts get the "self.<subreddit>" form, link posts
// get the link's host.
func postDomain(p *reddit.Post) string {
	if p.IsSelfPost {
		return "self." + p.SubredditName
	}
	if u, err := url.Parse(p.URL); err == nil && u.Host != "" {
		return u.Host
	}
	return ""
}
