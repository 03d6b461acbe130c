package dto

// Reasons a pipeline run rendered nothing
const (
	SkipInvalidURL      = "invalid_url"
	SkipNoCredential    = "no_credential"
	SkipCredentialError = "credential_error"
	SkipAuthFailed      = "auth_failed"
	SkipNotFound        = "not_found"
)

// AugmentRequest asks for the shortcuts of one repository page
type AugmentRequest struct {
	URL string `json:"url" binding:"required"`
}

// RenderRequest asks for the shortcuts to be rendered into a page document
type RenderRequest struct {
	URL  string `json:"url" binding:"required"`
	HTML string `json:"html" binding:"required"`
}

// UpstreamResponse is the target of the "Back to Upstream" button
type UpstreamResponse struct {
	URL      string `json:"url"`
	FullName string `json:"full_name"`
}

// ForkResponse is one destination of the "Go to Fork" button
type ForkResponse struct {
	Owner    string `json:"owner"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	URL      string `json:"url"`
}

// AugmentResult is the outcome of one pipeline run
type AugmentResult struct {
	RunID         string            `json:"run_id"`
	URL           string            `json:"url"`
	Repository    string            `json:"repository,omitempty"`
	Skipped       string            `json:"skipped,omitempty"`
	OwnRepository bool              `json:"own_repository"`
	Upstream      *UpstreamResponse `json:"upstream,omitempty"`
	Forks         []ForkResponse    `json:"forks"`
}

// HasButtons reports whether anything should be rendered
func (r *AugmentResult) HasButtons() bool {
	return r != nil && (r.Upstream != nil || len(r.Forks) > 0)
}
