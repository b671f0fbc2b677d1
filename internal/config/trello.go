package config

type Trello struct {
	APIKey  string `env:"TRELLO_API_KEY,notEmpty" validate:"required"`
	Token   string `env:"TRELLO_TOKEN,notEmpty"   validate:"required"`
	BaseURL string `env:"TRELLO_BASE_URL"         envDefault:"https://api.trello.com/1" validate:"required,url"`
	// CardHost is the substring that marks a comment as a card link.
	CardHost string `env:"TRELLO_CARD_HOST" envDefault:"https://trello.com/" validate:"required,url"`
}
