package github

import "fmt"

// RepositoryInvalidError means the existence check on /repos/{owner}/{name}
// came back non-2xx. The post should be skipped; the watch loop carries on.
type RepositoryInvalidError struct {
	Owner  string
	Name   string
	Status int
}

func (e *RepositoryInvalidError) Error() string {
	return fmt.Sprintf("repository %s/%s invalid: status %d", e.Owner, e.Name, e.Status)
}
