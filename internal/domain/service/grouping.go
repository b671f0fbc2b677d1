package service

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"pr_report/internal/domain/entity"
)

// Grouper partitions PRs by title prefix and orders each partition by
// workflow stage, most recently updated first within a stage.
type Grouper struct {
	projects []string
}

func NewGrouper(projects []string) Grouper {
	return Grouper{projects: lo.Without(lo.Uniq(projects), entity.ProjectOther)}
}

// Group always returns the catch-all group first, followed by one group per
// configured project in configuration order, empty or not.
func (g Grouper) Group(prs []entity.EnrichedPullRequest) []entity.ProjectGroup {
	byProject := lo.GroupBy(prs, func(pr entity.EnrichedPullRequest) string {
		project, ok := g.ProjectOf(pr.Title)
		if !ok {
			return entity.ProjectOther
		}
		return project
	})

	groups := make([]entity.ProjectGroup, 0, len(g.projects)+1)
	for _, project := range append([]string{entity.ProjectOther}, g.projects...) {
		members := slices.Clone(byProject[project])
		SortPullRequests(members)

		groups = append(groups, entity.ProjectGroup{
			Project:      project,
			PullRequests: members,
			Lines: lo.Map(members, func(pr entity.EnrichedPullRequest, _ int) string {
				return RenderLine(pr, project)
			}),
		})
	}

	return groups
}

// ProjectOf returns the first configured project whose "P:" prefix starts title.
func (g Grouper) ProjectOf(title string) (string, bool) {
	return lo.Find(g.projects, func(project string) bool {
		return strings.HasPrefix(title, project+":")
	})
}

func SortPullRequests(prs []entity.EnrichedPullRequest) {
	slices.SortStableFunc(prs, comparePullRequests)
}

func comparePullRequests(a, b entity.EnrichedPullRequest) int {
	if c := cmp.Compare(a.Status(), b.Status()); c != 0 {
		return c
	}
	if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.Number, a.Number)
}

// RenderLine formats a PR as "{title} {url} ({STATUS})". Titles in project
// groups lose their "P:" prefix; the catch-all group keeps them whole.
func RenderLine(pr entity.EnrichedPullRequest, project string) string {
	title := pr.Title
	if project != entity.ProjectOther {
		title = strings.TrimSpace(strings.TrimPrefix(title, project+":"))
	}

	parts := []string{title, pr.DisplayURL()}
	if status := pr.StatusName(); status != "" {
		parts = append(parts, fmt.Sprintf("(%s)", strings.ToUpper(status)))
	}

	return strings.Join(lo.Compact(parts), " ")
}
