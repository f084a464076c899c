package watch

import (
	"context"
	"log/slog"
	"time"

	"github.com/qepting91/license-bot/internal/domain"
	"github.com/qepting91/license-bot/internal/github"
	"github.com/qepting91/license-bot/internal/metrics"
	"github.com/qepting91/license-bot/internal/storage"
)

// ReplyText is the message posted under submissions whose linked repository
// has no license.
const ReplyText = "Hello! It looks like the GitHub repository linked in your post does not " +
	"have a license file. Without one, default copyright rules apply and nobody may legally " +
	"use, modify, or distribute your code, even though it is publicly visible.\n\n" +
	"If you want others to be able to use, learn from, or contribute to your project, " +
	"consider adding a license. https://choosealicense.com/ walks through the options " +
	"and how to add one to your repository."

// DefaultEmptyPageDelay is how long the watcher waits when the listing has
// nothing new.
const DefaultEmptyPageDelay = 15 * time.Second

// Options wires a Watcher to its collaborators.
type Options struct {
	Collector domain.Collector
	Checker   domain.LicenseChecker
	Replier   domain.Replier
	Subreddit string
	// StatePath is the processed-set file for this subreddit
	StatePath string
	// ReplyLog is optional; successful replies are recorded there
	ReplyLog       *storage.ReplyLog
	EmptyPageDelay time.Duration
	Logger         *slog.Logger
}

// Watcher drives the poll loop over one subreddit's "new" listing. It owns
// the pagination cursor and the processed set exclusively; a single goroutine
// calls Run, so neither needs locking.
type Watcher struct {
	collector  domain.Collector
	checker    domain.LicenseChecker
	replier    domain.Replier
	subreddit  string
	statePath  string
	replyLog   *storage.ReplyLog
	emptyDelay time.Duration
	logger     *slog.Logger

	after     string
	processed *storage.ProcessedSet

	sleep func(ctx context.Context, d time.Duration)
}

// New builds a Watcher, loading any previously persisted processed set from
// opts.StatePath.
func New(opts Options) *Watcher {
	delay := opts.EmptyPageDelay
	if delay <= 0 {
		delay = DefaultEmptyPageDelay
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		collector:  opts.Collector,
		checker:    opts.Checker,
		replier:    opts.Replier,
		subreddit:  opts.Subreddit,
		statePath:  opts.StatePath,
		replyLog:   opts.ReplyLog,
		emptyDelay: delay,
		logger:     logger,
		processed:  storage.Load(opts.StatePath),
		sleep:      sleepContext,
	}
}

// Run polls until ctx is cancelled. The only other way out is a failed flush
// of the processed set: running on without durable dedup state risks double
// replies, so that error is fatal.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info("watching subreddit", "subreddit", w.subreddit, "known_posts", w.processed.Len())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := w.runOnce(ctx); err != nil {
			return err
		}
	}
}

// runOnce executes one iteration of the poll loop. Fetch and per-post errors
// are handled in place; only a flush failure is returned.
func (w *Watcher) runOnce(ctx context.Context) error {
	page, err := w.collector.FetchNewPosts(ctx, w.subreddit, w.after)
	switch {
	case err != nil:
		if ctx.Err() == nil {
			metrics.FetchErrors.Inc()
			w.logger.Error("listing fetch failed", "subreddit", w.subreddit, "err", err)
		}
		// cursor unchanged; retry next iteration
	case len(page.Posts) == 0:
		metrics.PagesFetched.Inc()
		w.logger.Debug("no new posts", "subreddit", w.subreddit)
		w.sleep(ctx, w.emptyDelay)
	default:
		metrics.PagesFetched.Inc()
		for _, p := range page.Posts {
			w.handlePost(ctx, p)
		}
		if page.After != "" {
			w.after = page.After
		} else {
			// end of the listing: hold position and wait, so the next fetch
			// re-reads the same window instead of resetting to the first page
			w.sleep(ctx, w.emptyDelay)
		}
	}

	if err := w.processed.Flush(w.statePath); err != nil {
		return err
	}
	return nil
}

// handlePost runs the decision pipeline for a single post. Every outcome
// short of a reply is a silent skip; checker and publisher failures are
// logged and never abort the loop.
func (w *Watcher) handlePost(ctx context.Context, p domain.Post) {
	if w.processed.Contains(p.Fullname) {
		return
	}
	// Marked before the reply is attempted: at most one attempt per post,
	// even if the reply itself fails.
	w.processed.Add(p.Fullname)
	metrics.PostsProcessed.Inc()

	if p.IsSelfPost() {
		return
	}
	owner, name, ok := github.ExtractRepo(p.URL)
	if !ok {
		return
	}

	missing, err := w.checker.MissingLicense(ctx, owner, name)
	if err != nil {
		metrics.CheckErrors.Inc()
		w.logger.Error("license check failed", "post", p.Fullname, "repo", owner+"/"+name, "err", err)
		return
	}
	if !missing {
		w.logger.Debug("license present", "post", p.Fullname, "repo", owner+"/"+name)
		return
	}

	if err := w.replier.SubmitComment(ctx, p.Fullname, ReplyText); err != nil {
		metrics.ReplyErrors.Inc()
		w.logger.Error("reply failed", "post", p.Fullname, "err", err)
		return
	}
	metrics.RepliesSubmitted.Inc()
	w.logger.Info("replied", "post", p.Fullname, "repo", owner+"/"+name)

	if w.replyLog != nil {
		rec := storage.ReplyRecord{
			Fullname:  p.Fullname,
			Subreddit: w.subreddit,
			Owner:     owner,
			Repo:      name,
			RepliedAt: time.Now().UTC(),
		}
		if err := w.replyLog.Append(rec); err != nil {
			w.logger.Error("reply log append failed", "err", err)
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
