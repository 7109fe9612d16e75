package authz

// Config carries the cross-origin settings enforced at the router edge.
type Config struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:4200,http://localhost:5173"`
	MaxAge         int      `env:"CORS_MAX_AGE" envDefault:"3600"`
}
