package fork

import (
	"fmt"
	"regexp"
)

// PageMatcher recognizes repository pages on the hosting provider's web host.
// Every page under /{owner}/{repo} matches, including issues, pulls and files.
type PageMatcher struct {
	pattern *regexp.Regexp
}

// NewPageMatcher builds a matcher for host, e.g. "github.com"
func NewPageMatcher(host string) *PageMatcher {
	expr := fmt.Sprintf(`^https?://%s/([^/?#]+)/([^/?#]+)(?:[/?#]|$)`, regexp.QuoteMeta(host))
	return &PageMatcher{pattern: regexp.MustCompile(expr)}
}

// Match extracts the repository a page URL belongs to
func (m *PageMatcher) Match(rawURL string) (RepositoryRef, bool) {
	groups := m.pattern.FindStringSubmatch(rawURL)
	if groups == nil {
		return RepositoryRef{}, false
	}
	ref, err := NewRepositoryRef(groups[1], groups[2])
	if err != nil {
		return RepositoryRef{}, false
	}
	return ref, true
}
