package config

import "time"

type HTTP struct {
	BaseURL   string    `env:"BASE_URL,expand" envDefault:"/"`
	Address   string    `env:"ADDRESS,expand" envDefault:":3003"`
	Session   Session   `envPrefix:"SESSION_"`
	RateLimit RateLimit `envPrefix:"RATELIMIT_"`
	CORS      CORS      `envPrefix:"CORS_"`
}

type Session struct {
	Keys   []string `env:"KEYS" envSeparator:","`
	Cookie Cookie   `envPrefix:"COOKIE_"`
}

type Cookie struct {
	MaxAge   time.Duration `env:"MAX_AGE,expand" envDefault:"168h"`
	Path     string        `env:"PATH,expand" envDefault:"/"`
	HTTPOnly bool          `env:"HTTP_ONLY,expand" envDefault:"true"`
	Secure   bool          `env:"SECURE,expand" envDefault:"false"`
}

type RateLimit struct {
	Enabled      bool          `env:"ENABLED,expand" envDefault:"true"`
	TrustHeaders bool          `env:"TRUST_HEADERS,expand" envDefault:"false"`
	Interval     time.Duration `env:"INTERVAL,expand" envDefault:"1s"`
	MaxBurst     int           `env:"MAX_BURST,expand" envDefault:"10"`
	CacheSize    int           `env:"CACHE_SIZE,expand" envDefault:"1024"`
	TTL          time.Duration `env:"TTL,expand" envDefault:"10m"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}
