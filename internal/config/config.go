package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/lo"

	"pr_report/internal/domain"
	"pr_report/pkg/errcodes"
)

type Config struct {
	GitHub     GitHub
	Trello     Trello
	Report     Report
	HTTPClient HTTPClient
	Debug      bool `env:"DEBUG" envDefault:"false"`
}

// Load reads .env when present, then the process environment, which wins.
func Load() (Config, error) {
	_ = godotenv.Load()

	return Parse()
}

func Parse() (Config, error) {
	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, domain.WrapError(fmt.Errorf("env.Parse: %w", err), errcodes.InvalidConfig, "failed to parse config")
	}

	config.GitHub.AccessToken = correctNewlines(config.GitHub.AccessToken)
	config.Report.Projects = normalizeProjects(config.Report.Projects)

	if err := validator.New().Struct(config); err != nil {
		return Config{}, domain.WrapError(fmt.Errorf("validator.Struct: %w", err), errcodes.InvalidConfig, "invalid config")
	}

	return config, nil
}

// LogValue keeps credentials out of the logs.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Group("github",
			slog.String("owner", c.GitHub.Owner),
			slog.String("repo", c.GitHub.Repo),
			slog.String("base_url", c.GitHub.BaseURL),
			slog.Int("per_page", c.GitHub.PerPage),
		),
		slog.Group("trello",
			slog.String("base_url", c.Trello.BaseURL),
			slog.String("card_host", c.Trello.CardHost),
		),
		slog.Group("report",
			slog.Any("projects", c.Report.Projects),
			slog.Time("since", c.Report.Since),
			slog.Time("until", c.Report.Until),
			slog.String("format", c.Report.Format),
			slog.Bool("cache_cards", c.Report.CacheCards),
			slog.Int("comment_concurrency", c.Report.CommentConcurrency),
		),
		slog.Duration("http_client_timeout", c.HTTPClient.Timeout),
		slog.Bool("debug", c.Debug),
	)
}

func correctNewlines(s string) string {
	return strings.TrimSpace(strings.NewReplacer(`"`, "", `\n`, "").Replace(s))
}

func normalizeProjects(projects []string) []string {
	return lo.Uniq(lo.Compact(lo.Map(projects, func(p string, _ int) string {
		return strings.TrimSpace(p)
	})))
}
