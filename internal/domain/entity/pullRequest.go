package entity

import "time"

type PullRequest struct {
	Number    int
	Title     string
	State     string
	UpdatedAt time.Time
	URL       string
}

type Comment struct {
	Body string
}

// EnrichedPullRequest accumulates what each pipeline stage learns about a PR.
// Stages fill empty fields only; the *Err fields record per-PR failures.
type EnrichedPullRequest struct {
	PullRequest

	Comments    []string
	CommentsErr error

	Link CardLink

	Card    *Card
	CardErr error
}

func (p EnrichedPullRequest) StatusName() string {
	if p.Card == nil {
		return ""
	}
	return p.Card.StatusName
}

func (p EnrichedPullRequest) Status() Status {
	if p.Card == nil {
		return StatusUnknown
	}
	return p.Card.Status()
}

// DisplayURL prefers the card URL and falls back to the PR URL.
func (p EnrichedPullRequest) DisplayURL() string {
	if p.Card != nil && p.Card.URL != "" {
		return p.Card.URL
	}
	return p.URL
}
