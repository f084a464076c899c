package github

import "strings"

const hostMarker = "github.com/"

// ExtractRepo pulls an (owner, name) pair out of a GitHub URL.
// Inputs that do not look like a repository link return ok=false; that is a
// normal outcome for arbitrary post URLs, not an error.
func ExtractRepo(rawURL string) (owner, name string, ok bool) {
	idx := strings.Index(rawURL, hostMarker)
	if idx < 0 {
		return "", "", false
	}
	rest := rawURL[idx+len(hostMarker):]

	var parts []string
	for _, p := range strings.Split(rest, "/") {
		if p != "" {
			parts = append(parts, p)
		}
		if len(parts) == 2 {
			break
		}
	}
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
