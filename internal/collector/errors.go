package collector

import "fmt"

// ReplyFailedError means the comment endpoint rejected a reply submission.
// The watcher logs it and moves on; the post stays marked processed.
type ReplyFailedError struct {
	Fullname string
	Status   int
}

func (e *ReplyFailedError) Error() string {
	return fmt.Sprintf("reply to %s failed: status %d", e.Fullname, e.Status)
}
