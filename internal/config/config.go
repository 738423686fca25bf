package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// General server level configuration.
type coreSettings struct {
	Debug bool `env:"DEBUG"`

	DBURI     string `env:"DB_URI" envDefault:"file:portfolio.sqlite3"`
	DBMigrate bool   `env:"DB_MIGRATE"`

	// Visits are counted in the database when enabled.
	VisitsEnabled bool `env:"VISITS_ENABLED" envDefault:"true"`

	// An optional yaml file replacing the bundled portfolio.
	ContentPath string `env:"CONTENT_PATH,expand"`
}

// Settings related to the ssh server.
type sshSettings struct {
	HostKeyPath string        `env:"SSH_HOST_KEY_PATH,expand" envDefault:".ssh/portfolio_ed25519"`
	BindAddr    string        `env:"SSH_BIND_ADDR" envDefault:"127.0.0.1:2222"`
	IdleTimeout time.Duration `env:"SSH_IDLE_TIMEOUT" envDefault:"5m"`
	MaxTimeout  time.Duration `env:"SSH_MAX_TIMEOUT" envDefault:"30m"`

	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
	RateLimitBurst     int `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

type Settings struct {
	Core coreSettings
	SSH  sshSettings
}

// Reads the settings from the environment.
func Parse() (Settings, error) {
	var settings Settings

	if err := env.Parse(&settings.Core); err != nil {
		return Settings{}, errors.Wrap(err, "could not parse core configuration")
	}

	if err := env.Parse(&settings.SSH); err != nil {
		return Settings{}, errors.Wrap(err, "could not parse ssh configuration")
	}
	if settings.SSH.IdleTimeout <= 0 || settings.SSH.MaxTimeout <= 0 {
		return Settings{}, errors.New("ssh timeouts must be greater than 0")
	}
	if settings.SSH.RateLimitPerMinute < 1 || settings.SSH.RateLimitBurst < 1 {
		return Settings{}, errors.New("rate limits must be at least 1")
	}

	return settings, nil
}

func init() {
	settings, err := Parse()
	if err != nil {
		panic(err.Error())
	}

	Core = settings.Core
	SSH = settings.SSH
}

// Parsed once at startup. Binaries read these, library packages take
// the values they need as arguments.
var Core coreSettings
var SSH sshSettings
