package account

// Config carries the account module settings sourced from the environment.
type Config struct {
	// RedirectURI is the front-end address that receives the OAuth2
	// completion redirect, for success and failure outcomes alike.
	RedirectURI string `env:"OAUTH2_REDIRECT_URI" envDefault:"http://localhost:3000/oauth2/redirect"`
}
