package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PagesFetched = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "licensebot_pages_fetched_total",
		Help: "Listing pages fetched from the subreddit",
	})
	FetchErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "licensebot_fetch_errors_total",
		Help: "Failed listing fetches",
	})
	PostsProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "licensebot_posts_processed_total",
		Help: "Posts newly marked processed",
	})
	RepliesSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "licensebot_replies_submitted_total",
		Help: "License reminders posted",
	})
	CheckErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "licensebot_check_errors_total",
		Help: "Per-post license check failures",
	})
	ReplyErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "licensebot_reply_errors_total",
		Help: "Per-post reply submission failures",
	})
)

func init() {
	prometheus.MustRegister(PagesFetched, FetchErrors, PostsProcessed, RepliesSubmitted, CheckErrors, ReplyErrors)
}
