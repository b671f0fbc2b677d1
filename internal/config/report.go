package config

import (
	"time"

	"pr_report/internal/domain/value"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Report struct {
	Projects []string  `env:"PROJECTS" envSeparator:"," validate:"dive,excludes=:"`
	Since    time.Time `env:"REPORT_SINCE,notEmpty"`
	// Until is optional; the zero value leaves the window open-ended.
	Until              time.Time `env:"REPORT_UNTIL"`
	Format             string    `env:"REPORT_FORMAT"       envDefault:"text" validate:"oneof=text json"`
	CacheCards         bool      `env:"REPORT_CACHE_CARDS"  envDefault:"false"`
	CommentConcurrency int       `env:"COMMENT_CONCURRENCY" envDefault:"8"    validate:"min=1"`
}

func (r Report) Window() value.Window {
	w := value.Window{Since: r.Since}
	if !r.Until.IsZero() {
		until := r.Until
		w.Until = &until
	}
	return w
}
