package presenter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	jsoniter "github.com/json-iterator/go"

	"pr_report/internal/config"
	"pr_report/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

// Write renders report to w in the given format ("text" or "json").
func Write(w io.Writer, report entity.Report, format string) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, report)
	case config.FormatText, "":
		return writeText(w, report)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

type jsonReport struct {
	RunID    string              `json:"run_id,omitempty"`
	Since    time.Time           `json:"since"`
	Until    *time.Time          `json:"until,omitempty"`
	Projects []string            `json:"projects"`
	Groups   map[string][]string `json:"groups"`
}

func writeJSON(w io.Writer, report entity.Report) error {
	projects := make([]string, 0, len(report.Groups))
	for _, group := range report.Groups {
		projects = append(projects, group.Project)
	}

	out, err := json.MarshalIndent(jsonReport{
		RunID:    report.RunID,
		Since:    report.Since,
		Until:    report.Until,
		Projects: projects,
		Groups:   report.Lines(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(out)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeText(w io.Writer, report entity.Report) error {
	r := lipgloss.NewRenderer(w)

	var (
		headerStyle = r.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
		dimStyle    = r.NewStyle().Faint(true)
		errStyle    = r.NewStyle().Foreground(lipgloss.Color("196"))
		lineStyle   = r.NewStyle().PaddingLeft(2)
	)

	var b strings.Builder

	window := report.Since.Format(time.RFC3339) + " .. "
	if report.Until != nil {
		window += report.Until.Format(time.RFC3339)
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("Pull requests updated %s (%d total)", window, report.Total())))
	b.WriteString("\n")

	for _, group := range report.Groups {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%d)", group.Project, len(group.Lines))))
		b.WriteString("\n")

		if len(group.Lines) == 0 {
			b.WriteString(lineStyle.Render(dimStyle.Render("no pull requests")))
			b.WriteString("\n")
			continue
		}

		for i, line := range group.Lines {
			if group.PullRequests[i].CardErr != nil {
				line = errStyle.Render(line)
			}
			b.WriteString(lineStyle.Render(line))
			b.WriteString("\n")
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
