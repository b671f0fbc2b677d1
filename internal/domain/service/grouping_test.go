package service

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pr_report/internal/domain/entity"
)

var baseTime = time.Date(2023, 11, 6, 12, 0, 0, 0, time.UTC) //nolint:gochecknoglobals

func enrichedPR(number int, title, status string, updated time.Duration) entity.EnrichedPullRequest {
	pr := entity.EnrichedPullRequest{
		PullRequest: entity.PullRequest{
			Number:    number,
			Title:     title,
			State:     "open",
			UpdatedAt: baseTime.Add(updated),
			URL:       "https://github.com/acme/shop/pull/" + strconv.Itoa(number),
		},
	}
	if status != "" {
		pr.Card = &entity.Card{ID: "c" + strconv.Itoa(number), Title: title, StatusName: status}
	}
	return pr
}

func numbers(prs []entity.EnrichedPullRequest) []int {
	out := make([]int, 0, len(prs))
	for _, pr := range prs {
		out = append(out, pr.Number)
	}
	return out
}

func TestGrouperProjectOf(t *testing.T) {
	g := NewGrouper([]string{"Backend", "Back", "Frontend"})

	tests := []struct {
		title   string
		project string
		ok      bool
	}{
		{"Backend: Fix bug", "Backend", true},
		{"Back: tidy", "Back", true},
		{"Frontend:Button", "Frontend", true},
		{"Backend Fix bug", "", false},
		{"backend: lower case", "", false},
		{"Untracked fix", "", false},
		{"Fix Backend: later", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.title, func(t *testing.T) {
			project, ok := g.ProjectOf(tc.title)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.project, project)
		})
	}
}

func TestGrouperFirstMatchWins(t *testing.T) {
	g := NewGrouper([]string{"API", "API: v2"})

	project, ok := g.ProjectOf("API: v2: endpoint")

	require.True(t, ok)
	assert.Equal(t, "API", project)
}

func TestGrouperGroup(t *testing.T) {
	g := NewGrouper([]string{"Backend", "Frontend"})

	groups := g.Group([]entity.EnrichedPullRequest{
		enrichedPR(1, "Backend: Fix bug", "Doing", 0),
		enrichedPR(2, "Untracked fix", "", 0),
		enrichedPR(3, "Backend: Add cache", "Done", 0),
	})

	require.Len(t, groups, 3)
	assert.Equal(t, entity.ProjectOther, groups[0].Project)
	assert.Equal(t, "Backend", groups[1].Project)
	assert.Equal(t, "Frontend", groups[2].Project)

	assert.Equal(t, []int{2}, numbers(groups[0].PullRequests))
	assert.Equal(t, []string{"Untracked fix https://github.com/acme/shop/pull/2"}, groups[0].Lines)

	assert.Equal(t, []int{3, 1}, numbers(groups[1].PullRequests))
	assert.Equal(t, []string{
		"Add cache https://github.com/acme/shop/pull/3 (DONE)",
		"Fix bug https://github.com/acme/shop/pull/1 (DOING)",
	}, groups[1].Lines)

	assert.Empty(t, groups[2].PullRequests)
	assert.Empty(t, groups[2].Lines)
}

func TestSortPullRequests(t *testing.T) {
	t.Run("more complete status first", func(t *testing.T) {
		prs := []entity.EnrichedPullRequest{
			enrichedPR(1, "a", "Doing", 0),
			enrichedPR(2, "b", "Waiting for Review", 0),
			enrichedPR(3, "c", "Testing on Staging", 0),
			enrichedPR(4, "d", "Testing on Prod", 0),
			enrichedPR(5, "e", "Done", 0),
		}

		SortPullRequests(prs)

		assert.Equal(t, []int{5, 4, 3, 2, 1}, numbers(prs))
	})

	t.Run("same status sorts by recency", func(t *testing.T) {
		prs := []entity.EnrichedPullRequest{
			enrichedPR(1, "older", "Doing", -time.Hour),
			enrichedPR(2, "newer", "Doing", time.Hour),
		}

		SortPullRequests(prs)

		assert.Equal(t, []int{2, 1}, numbers(prs))
	})

	t.Run("unknown, missing and sentinel statuses sort last", func(t *testing.T) {
		prs := []entity.EnrichedPullRequest{
			enrichedPR(1, "no card", "", 2*time.Hour),
			enrichedPR(2, "backlog", "Backlog", time.Hour),
			enrichedPR(3, "broken", entity.SentinelLookupFailed, 3*time.Hour),
			enrichedPR(4, "doing", "Doing", -time.Hour),
		}

		SortPullRequests(prs)

		assert.Equal(t, []int{4, 3, 1, 2}, numbers(prs))
	})

	t.Run("identical status and time falls back to number", func(t *testing.T) {
		prs := []entity.EnrichedPullRequest{
			enrichedPR(7, "a", "Done", 0),
			enrichedPR(9, "b", "Done", 0),
		}

		SortPullRequests(prs)

		assert.Equal(t, []int{9, 7}, numbers(prs))
	})
}

func TestRenderLine(t *testing.T) {
	t.Run("project prefix stripped", func(t *testing.T) {
		pr := enrichedPR(1, "Backend: Fix bug", "", 0)
		assert.Equal(t, "Fix bug https://github.com/acme/shop/pull/1", RenderLine(pr, "Backend"))
	})

	t.Run("catch-all keeps title", func(t *testing.T) {
		pr := enrichedPR(2, "Untracked fix", "", 0)
		assert.Equal(t, "Untracked fix https://github.com/acme/shop/pull/2", RenderLine(pr, entity.ProjectOther))
	})

	t.Run("card url and status", func(t *testing.T) {
		pr := enrichedPR(3, "Backend: Cache", "Testing on Prod", 0)
		pr.Card.URL = "https://trello.com/c/abc123/7-cache"

		assert.Equal(t, "Cache https://trello.com/c/abc123/7-cache (TESTING ON PROD)", RenderLine(pr, "Backend"))
	})

	t.Run("sentinel status", func(t *testing.T) {
		pr := enrichedPR(4, "Broken link", "", 0)
		pr.Card = entity.SentinelCard("", entity.SentinelMalformedLink)

		assert.Equal(t,
			"Broken link https://github.com/acme/shop/pull/4 (ERROR: CARD URL DOES NOT MATCH PATTERN)",
			RenderLine(pr, entity.ProjectOther))
	})
}
