package storage

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// ReplyRecord is one line of the NDJSON reply log.
type ReplyRecord struct {
	Fullname  string    `json:"fullname"`
	Subreddit string    `json:"subreddit"`
	Owner     string    `json:"owner"`
	Repo      string    `json:"repo"`
	RepliedAt time.Time `json:"replied_at"`
}

// ReplyLog appends one record per submitted reply. It exists for the
// dashboard; the watch loop never reads it back.
type ReplyLog struct {
	FilePath string
}

// Append writes rec as a single NDJSON line. Log failures are reported but
// non-fatal to callers: the reply already went out.
func (l *ReplyLog) Append(rec ReplyRecord) error {
	if err := os.MkdirAll(filepath.Dir(l.FilePath), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(l.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(rec)
}

// ReadReplyLog loads every parseable record from an NDJSON reply log.
// Unreadable files or bad lines are skipped; the dashboard renders whatever
// is there.
func ReadReplyLog(path string) []ReplyRecord {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	var recs []ReplyRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var r ReplyRecord
		if err := json.Unmarshal(scanner.Bytes(), &r); err == nil {
			recs = append(recs, r)
		}
	}
	return recs
}
