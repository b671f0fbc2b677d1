package config

import "time"

type HTTPClient struct {
	Timeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"30s"`
}
