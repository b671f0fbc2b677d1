package entity

import "time"

// ProjectOther is the catch-all group for titles without a configured prefix.
const ProjectOther = "OTHER"

type ProjectGroup struct {
	Project      string
	PullRequests []EnrichedPullRequest
	Lines        []string
}

type Report struct {
	RunID  string
	Since  time.Time
	Until  *time.Time
	Groups []ProjectGroup
}

func (r Report) Lines() map[string][]string {
	lines := make(map[string][]string, len(r.Groups))
	for _, group := range r.Groups {
		lines[group.Project] = group.Lines
	}
	return lines
}

func (r Report) Total() int {
	total := 0
	for _, group := range r.Groups {
		total += len(group.PullRequests)
	}
	return total
}
