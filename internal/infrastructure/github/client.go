package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v66/github"
	"github.com/samber/lo"

	"pr_report/internal/config"
	"pr_report/internal/domain"
	"pr_report/internal/domain/entity"
	"pr_report/internal/domain/value"
	"pr_report/pkg/contextx"
	"pr_report/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Client reads pull requests and their comments from one repository.
type Client struct {
	client  *gh.Client
	owner   string
	repo    string
	perPage int
}

func NewClient(httpClient *http.Client, cfg config.GitHub) (*Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, domain.WrapError(fmt.Errorf("url.Parse(%s): %w", cfg.BaseURL, err), errcodes.InvalidConfig, "invalid GitHub base URL")
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	client := gh.NewClient(httpClient).WithAuthToken(cfg.AccessToken)
	client.BaseURL = baseURL

	return &Client{
		client:  client,
		owner:   cfg.Owner,
		repo:    cfg.Repo,
		perPage: cfg.PerPage,
	}, nil
}

// ListPullRequests returns every pull request updated since since and, when
// until is set, not after until. Pull requests are read through the issues
// endpoint, which supports "since"; plain issues are dropped here.
func (c *Client) ListPullRequests(ctx context.Context, since time.Time, until *time.Time) ([]entity.PullRequest, error) {
	window := value.Window{Since: since, Until: until}
	if !window.Valid() {
		return []entity.PullRequest{}, domain.NewError(errcodes.InvalidDateRange, "end date should be after start date")
	}

	opts := &gh.IssueListByRepoOptions{
		State: "all",
		Since: since,
		ListOptions: gh.ListOptions{
			PerPage: c.perPage,
		},
	}

	var issues []*gh.Issue
	for {
		page, resp, err := c.client.Issues.ListByRepo(ctx, c.owner, c.repo, opts)
		if err != nil {
			return []entity.PullRequest{}, domain.WrapError(err, errcodes.SourceTrackerUnavailable, "failed to list issues")
		}
		issues = append(issues, page...)
		logger(ctx).Debug("issues page fetched",
			slog.Int("page", opts.Page),
			slog.Int("count", len(page)),
		)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return lo.FilterMap(issues, func(issue *gh.Issue, _ int) (entity.PullRequest, bool) {
		if !issue.IsPullRequest() {
			return entity.PullRequest{}, false
		}

		if !window.Contains(issue.GetUpdatedAt().Time) {
			return entity.PullRequest{}, false
		}

		return newPullRequest(issue), true
	}), nil
}

// ListComments returns all conversation comments of a pull request in the
// order GitHub reports them.
func (c *Client) ListComments(ctx context.Context, number int) ([]entity.Comment, error) {
	opts := &gh.IssueListCommentsOptions{
		ListOptions: gh.ListOptions{
			PerPage: c.perPage,
		},
	}

	var comments []*gh.IssueComment
	for {
		page, resp, err := c.client.Issues.ListComments(ctx, c.owner, c.repo, number, opts)
		if err != nil {
			return []entity.Comment{}, domain.WrapError(err, errcodes.SourceTrackerUnavailable,
				fmt.Sprintf("failed to list comments for PR #%d", number))
		}
		comments = append(comments, page...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return lo.Map(comments, func(comment *gh.IssueComment, _ int) entity.Comment {
		return entity.Comment{Body: comment.GetBody()}
	}), nil
}

func newPullRequest(issue *gh.Issue) entity.PullRequest {
	return entity.PullRequest{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		State:     issue.GetState(),
		UpdatedAt: issue.GetUpdatedAt().Time,
		URL:       issue.GetHTMLURL(),
	}
}
