package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"pr_report/internal/domain"
	"pr_report/internal/domain/entity"
	"pr_report/internal/domain/value"
	"pr_report/pkg/errcodes"
)

type SourceTracker interface {
	ListPullRequests(ctx context.Context, since time.Time, until *time.Time) ([]entity.PullRequest, error)
	ListComments(ctx context.Context, number int) ([]entity.Comment, error)
}

type CardResolver interface {
	ResolveCard(ctx context.Context, cardID string) (entity.Card, error)
}

type ReportOptions struct {
	Projects           []string
	CardHost           string
	CommentConcurrency int
	// CacheCards reuses a card resolved earlier in the same run instead of
	// fetching it again for every PR that references it.
	CacheCards bool
}

type ReportService struct {
	tracker    SourceTracker
	cards      CardResolver
	links      LinkExtractor
	grouper    Grouper
	fanOut     int
	cacheCards bool
}

func NewReportService(tracker SourceTracker, cards CardResolver, opts ReportOptions) *ReportService {
	return &ReportService{
		tracker:    tracker,
		cards:      cards,
		links:      NewLinkExtractor(opts.CardHost),
		grouper:    NewGrouper(opts.Projects),
		fanOut:     max(opts.CommentConcurrency, 1),
		cacheCards: opts.CacheCards,
	}
}

// Build runs the whole pipeline for window. It never fails: every external
// error is logged and recorded on the PR it belongs to, or degrades the
// batch to empty when the PR listing itself fails.
func (s *ReportService) Build(ctx context.Context, window value.Window) entity.Report {
	prs := s.fetchPullRequests(ctx, window)
	logger(ctx).Info("pull requests fetched", slog.Int("count", len(prs)))

	enriched := s.attachComments(ctx, prs)
	enriched = s.attachLinks(enriched)
	enriched = s.attachCards(ctx, enriched)

	return entity.Report{
		Since:  window.Since,
		Until:  window.Until,
		Groups: s.grouper.Group(enriched),
	}
}

func (s *ReportService) fetchPullRequests(ctx context.Context, window value.Window) []entity.PullRequest {
	prs, err := s.tracker.ListPullRequests(ctx, window.Since, window.Until)
	if err != nil {
		logger(ctx).Error("failed to list pull requests, continuing with an empty batch",
			slog.String("code", string(domain.CodeOf(err))),
			slog.Any("error", err),
		)
		return []entity.PullRequest{}
	}
	return prs
}

// attachComments fetches comments for every PR concurrently. Results land at
// the PR's own index, so completion order does not affect output order, and a
// failed fetch only affects its own PR.
func (s *ReportService) attachComments(ctx context.Context, prs []entity.PullRequest) []entity.EnrichedPullRequest {
	enriched := make([]entity.EnrichedPullRequest, len(prs))

	g := new(errgroup.Group)
	g.SetLimit(s.fanOut)

	for i, pr := range prs {
		i, pr := i, pr
		g.Go(func() error {
			comments, err := s.tracker.ListComments(ctx, pr.Number)
			if err != nil {
				logger(ctx).Warn("failed to fetch comments",
					slog.Int("pr", pr.Number),
					slog.Any("error", err),
				)
			}

			enriched[i] = entity.EnrichedPullRequest{
				PullRequest: pr,
				Comments: lo.Map(comments, func(c entity.Comment, _ int) string {
					return c.Body
				}),
				CommentsErr: err,
			}
			return nil
		})
	}

	_ = g.Wait()

	return enriched
}

func (s *ReportService) attachLinks(prs []entity.EnrichedPullRequest) []entity.EnrichedPullRequest {
	return lo.Map(prs, func(pr entity.EnrichedPullRequest, _ int) entity.EnrichedPullRequest {
		pr.Link = s.links.Extract(pr.Comments)
		return pr
	})
}

// attachCards resolves cards one at a time to keep load on the card service
// at a single request.
func (s *ReportService) attachCards(ctx context.Context, prs []entity.EnrichedPullRequest) []entity.EnrichedPullRequest {
	out := make([]entity.EnrichedPullRequest, 0, len(prs))
	resolved := make(map[string]entity.Card)

	for _, pr := range prs {
		logger(ctx).Debug("card link",
			slog.Int("pr", pr.Number),
			slog.String("state", pr.Link.State.String()),
		)

		switch pr.Link.State {
		case entity.LinkNone:
		case entity.LinkMalformed:
			logger(ctx).Warn("card link does not match pattern",
				slog.Int("pr", pr.Number),
				slog.String("link", pr.Link.Raw),
			)
			pr.Card = entity.SentinelCard("", entity.SentinelMalformedLink)
			pr.CardErr = domain.NewError(errcodes.MalformedCardLink, entity.SentinelMalformedLink)
		case entity.LinkOK:
			card, err := s.resolveCard(ctx, pr.Link.CardID, resolved)
			if err != nil {
				logger(ctx).Warn("failed to resolve card",
					slog.Int("pr", pr.Number),
					slog.String("card_id", pr.Link.CardID),
					slog.Any("error", err),
				)
				pr.Card = entity.SentinelCard(pr.Link.CardID, entity.SentinelLookupFailed)
				pr.CardErr = err
				break
			}
			pr.Card = &card
		}

		out = append(out, pr)
	}

	return out
}

func (s *ReportService) resolveCard(ctx context.Context, cardID string, resolved map[string]entity.Card) (entity.Card, error) {
	if card, ok := resolved[cardID]; ok && s.cacheCards {
		logger(ctx).Debug("card served from run cache", slog.String("card_id", cardID))
		return card, nil
	}

	card, err := s.cards.ResolveCard(ctx, cardID)
	if err != nil {
		return entity.Card{}, err
	}

	resolved[cardID] = card
	return card, nil
}
