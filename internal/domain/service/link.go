package service

import (
	"regexp"
	"strings"

	"github.com/samber/lo"

	"pr_report/internal/domain/entity"
)

// LinkExtractor finds the card a PR points at by scanning its comments.
type LinkExtractor struct {
	host    string
	pattern *regexp.Regexp
}

// NewLinkExtractor builds an extractor for cards hosted under host,
// e.g. "https://trello.com/".
func NewLinkExtractor(host string) LinkExtractor {
	base := regexp.QuoteMeta(strings.TrimSuffix(host, "/"))

	return LinkExtractor{
		host: host,
		// Accepts a bare URL or the "](URL)" tail of a markdown link.
		pattern: regexp.MustCompile(`(?:\]\()?` + base + `/c/([^/)\s]+)\)?`),
	}
}

// Extract returns the first comment mentioning the card host, trimmed,
// together with the card ID parsed out of it.
func (e LinkExtractor) Extract(comments []string) entity.CardLink {
	comment, ok := lo.Find(comments, func(body string) bool {
		return strings.Contains(body, e.host)
	})
	if !ok {
		return entity.CardLink{State: entity.LinkNone}
	}

	link := entity.CardLink{Raw: strings.TrimSpace(comment)}

	cardID, ok := e.ParseCardID(link.Raw)
	if !ok {
		link.State = entity.LinkMalformed
		return link
	}

	link.CardID = cardID
	link.State = entity.LinkOK
	return link
}

func (e LinkExtractor) ParseCardID(candidate string) (string, bool) {
	match := e.pattern.FindStringSubmatch(candidate)
	if len(match) < 2 {
		return "", false
	}
	return match[1], true
}
