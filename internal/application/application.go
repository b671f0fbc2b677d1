package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/lo"

	"pr_report/internal/config"
	"pr_report/internal/domain/service"
	"pr_report/internal/domain/value"
	"pr_report/internal/infrastructure/github"
	"pr_report/internal/infrastructure/trello"
	"pr_report/internal/presenter"
	"pr_report/pkg/application/connectors"
	"pr_report/pkg/contextx"
	"pr_report/pkg/middlewarex"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type App struct {
	cfg    config.Config
	slog   *connectors.Slog
	output io.Writer

	github *github.Client
	trello *trello.Client

	reportService *service.ReportService
}

func New(appVersion string) App {
	const appName = "pr_report"

	cfg := lo.Must(config.Load())

	return NewWithConfig(cfg, appName, appVersion, os.Stdout)
}

func NewWithConfig(cfg config.Config, appName, appVersion string, output io.Writer) App {
	return App{
		cfg: cfg,
		slog: &connectors.Slog{
			Name:    appName,
			Version: appVersion,
			Debug:   cfg.Debug,
		},
		output: output,
	}
}

func (app App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)

	defer stop()

	return app.RunContext(ctx)
}

// RunContext builds one report and writes it to the app's output.
func (app App) RunContext(ctx context.Context) error {
	runID := value.NewRunID()

	ctx = contextx.WithLogger(ctx, app.slog.Logger(ctx).With(slog.String("run_id", runID.String())))

	logger(ctx).Info("config", slog.Any("config", app.cfg))

	httpClient := &http.Client{
		Timeout:   app.cfg.HTTPClient.Timeout,
		Transport: middlewarex.NewLoggingTransport(http.DefaultTransport),
	}

	var err error
	app.github, err = github.NewClient(httpClient, app.cfg.GitHub)
	if err != nil {
		return fmt.Errorf("github.NewClient: %w", err)
	}
	app.trello = trello.NewClient(httpClient, app.cfg.Trello)

	app.reportService = service.NewReportService(app.github, app.trello, service.ReportOptions{
		Projects:           app.cfg.Report.Projects,
		CardHost:           app.cfg.Trello.CardHost,
		CommentConcurrency: app.cfg.Report.CommentConcurrency,
		CacheCards:         app.cfg.Report.CacheCards,
	})

	report := app.reportService.Build(ctx, app.cfg.Report.Window())
	report.RunID = runID.String()

	logger(ctx).Info("report built",
		slog.Int("pull_requests", report.Total()),
		slog.Int("groups", len(report.Groups)),
	)

	if err := presenter.Write(app.output, report, app.cfg.Report.Format); err != nil {
		return fmt.Errorf("presenter.Write: %w", err)
	}

	return nil
}
