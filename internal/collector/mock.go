package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/qepting91/license-bot/internal/domain"
)

// MockClient returns one canned page of fake posts and never pages further.
// Useful for running the bot without credentials.
type MockClient struct {
	served bool
}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (mc *MockClient) FetchNewPosts(ctx context.Context, subreddit, after string) (domain.Page, error) {
	// Simulate network latency
	time.Sleep(500 * time.Millisecond)

	if mc.served {
		return domain.Page{}, nil
	}
	mc.served = true

	now := float64(time.Now().Unix())
	return domain.Page{
		Posts: []domain.Post{
			{
				Fullname: fmt.Sprintf("t3_mock_%s_1", subreddit),
				Domain:   "github.com",
				URL:      "https://github.com/mock-user/mock-repo",
				Title:    "Show off: my new project",
				Author:   "simulated_user",
				Created:  now,
			},
			{
				Fullname: fmt.Sprintf("t3_mock_%s_2", subreddit),
				Domain:   "self." + subreddit,
				URL:      fmt.Sprintf("https://www.reddit.com/r/%s/comments/mock2", subreddit),
				Title:    "Weekly discussion thread",
				Author:   "simulated_user",
				Created:  now,
			},
		},
	}, nil
}

func (mc *MockClient) SubmitComment(ctx context.Context, fullname, text string) error {
	return nil
}
