package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/qepting91/license-bot/internal/domain"
	"golang.org/x/time/rate"
)

// ScriptClient talks to Reddit the way a script-type app does: one password
// grant up front, then bearer-authenticated calls against oauth.reddit.com.
type ScriptClient struct {
	authURL    string
	apiURL     string
	username   string
	password   string
	clientID   string
	secret     string
	userAgent  string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
}

type listingResponse struct {
	Data struct {
		Children []struct {
			Data domain.Post `json:"data"`
		} `json:"children"`
		After string `json:"after"`
	} `json:"data"`
}

func NewScriptClient(username, password, clientID, secret, userAgent string) *ScriptClient {
	return &ScriptClient{
		authURL:    "https://www.reddit.com",
		apiURL:     "https://oauth.reddit.com",
		username:   username,
		password:   password,
		clientID:   clientID,
		secret:     secret,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		// API Rate Limit: ~60 reqs/min (safe buffer)
		limiter: rate.NewLimiter(rate.Every(1*time.Second), 1),
	}
}

// Login performs the password-grant handshake and stores the bearer token.
// Must be called before any other method.
func (sc *ScriptClient) Login(ctx context.Context) error {
	form := url.Values{
		"grant_type": {"password"},
		"username":   {sc.username},
		"password":   {sc.password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		sc.authURL+"/api/v1/access_token", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(sc.clientID, sc.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", sc.userAgent)

	resp, err := sc.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login attempt returned status %d", resp.StatusCode)
	}
	var tok accessTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return fmt.Errorf("decode access token: %w", err)
	}
	sc.token = tok.AccessToken
	return nil
}

func (sc *ScriptClient) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "bearer "+sc.token)
	req.Header.Set("User-Agent", sc.userAgent)
	return sc.httpClient.Do(req)
}

// FetchNewPosts reads one page of the subreddit's "new" listing. after is the
// pagination cursor from a previous page; empty means start from the newest.
func (sc *ScriptClient) FetchNewPosts(ctx context.Context, subreddit, after string) (domain.Page, error) {
	if err := sc.limiter.Wait(ctx); err != nil {
		return domain.Page{}, err
	}

	q := url.Values{"raw_json": {"1"}, "limit": {"100"}}
	if after != "" {
		q.Set("after", after)
	}
	u := fmt.Sprintf("%s/r/%s/new?%s", sc.apiURL, subreddit, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.Page{}, err
	}

	resp, err := sc.do(req)
	if err != nil {
		return domain.Page{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return domain.Page{}, fmt.Errorf("listing r/%s returned status %d", subreddit, resp.StatusCode)
	}

	var listing listingResponse
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return domain.Page{}, fmt.Errorf("decode listing: %w", err)
	}

	page := domain.Page{After: listing.Data.After}
	for _, child := range listing.Data.Children {
		page.Posts = append(page.Posts, child.Data)
	}
	return page, nil
}

// SubmitComment posts a reply on the submission identified by fullname.
func (sc *ScriptClient) SubmitComment(ctx context.Context, fullname, text string) error {
	if err := sc.limiter.Wait(ctx); err != nil {
		return err
	}

	form := url.Values{
		"api_type": {"json"},
		"thing_id": {fullname},
		"text":     {text},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		sc.apiURL+"/api/comment", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := sc.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &ReplyFailedError{Fullname: fullname, Status: resp.StatusCode}
	}
	return nil
}
