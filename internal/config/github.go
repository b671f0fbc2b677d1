package config

type GitHub struct {
	AccessToken string `env:"GITHUB_ACCESS_TOKEN,notEmpty" validate:"required"`
	Owner       string `env:"GITHUB_OWNER,notEmpty"        validate:"required"`
	Repo        string `env:"GITHUB_REPO,notEmpty"         validate:"required"`
	BaseURL     string `env:"GITHUB_BASE_URL"              envDefault:"https://api.github.com/" validate:"required,url"`
	PerPage     int    `env:"GITHUB_PER_PAGE"              envDefault:"100"                     validate:"min=1,max=100"`
}
