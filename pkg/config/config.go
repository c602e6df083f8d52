package config

import (
	"time"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type Auth struct {
	Strategy string `envconfig:"STRATEGY" default:"jwt"`
	Jwt      *Jwt   `envconfig:"JWT"`
	// MaxAttempts failed sign-ins per email inside Window before the
	// provider answers too-many-requests.
	MaxAttempts int           `envconfig:"MAX_ATTEMPTS" default:"5"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Redis struct {
	URL          string        `envconfig:"URL" default:"redis://localhost:6379/0"`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:"orion:"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

type Session struct {
	// Backend selects where the session pointer slot lives.
	Backend   string `envconfig:"BACKEND" default:"redis"`
	KeyPrefix string `envconfig:"KEY_PREFIX" default:"session:"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Onboarding struct {
	// SuccessDelay is the pause between the success banner and the
	// dashboard navigation intent.
	SuccessDelay time.Duration `envconfig:"SUCCESS_DELAY" default:"2s"`
}

type Notification struct {
	DismissAfter time.Duration `envconfig:"DISMISS_AFTER" default:"3s"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[orion]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env          string        `envconfig:"APP_ENV" default:"development"`
	Server       *Server       `envconfig:"SERVER"`
	Log          *Log          `envconfig:"LOG"`
	DB           *DB           `envconfig:"DATABASE"`
	Auth         *Auth         `envconfig:"AUTH"`
	Redis        *Redis        `envconfig:"REDIS"`
	Session      *Session      `envconfig:"SESSION"`
	RateLimit    *RateLimit    `envconfig:"RATE_LIMIT"`
	Onboarding   *Onboarding   `envconfig:"ONBOARDING"`
	Notification *Notification `envconfig:"NOTIFICATION"`
}
