package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App        AppConfig
	JWT        JWTConfig
	Password   PasswordConfig
	Otp        OtpConfig
	Simulation SimulationConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Simulation.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DAVINCI_APP_ENV" required:"true"`
	Port         string `envconfig:"DAVINCI_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"DAVINCI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DAVINCI_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type JWTConfig struct {
	Secret                 string `envconfig:"DAVINCI_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"DAVINCI_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"DAVINCI_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"DAVINCI_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"DAVINCI_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"DAVINCI_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"DAVINCI_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"DAVINCI_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"DAVINCI_ARGON_KEY_LEN" default:"32"`
}

type OtpConfig struct {
	// DevCode is the fixed verification code accepted outside production.
	DevCode string `envconfig:"DAVINCI_OTP_DEV_CODE" default:"123456"`
}

// SimulationConfig drives the latency and fault injection middleware.
type SimulationConfig struct {
	Enabled         bool          `envconfig:"DAVINCI_SIMULATION_ENABLED" default:"true"`
	DelayMin        time.Duration `envconfig:"DAVINCI_SIMULATION_DELAY_MIN" default:"300ms"`
	DelayMax        time.Duration `envconfig:"DAVINCI_SIMULATION_DELAY_MAX" default:"700ms"`
	RateLimitRate   float64       `envconfig:"DAVINCI_SIMULATION_RATE_LIMIT_RATE" default:"0.05"`
	ServerErrorRate float64       `envconfig:"DAVINCI_SIMULATION_SERVER_ERROR_RATE" default:"0.02"`
}

func (s SimulationConfig) validate() error {
	if s.DelayMin < 0 || s.DelayMax < s.DelayMin {
		return fmt.Errorf("simulation delay range is invalid: min=%s max=%s", s.DelayMin, s.DelayMax)
	}
	if s.RateLimitRate < 0 || s.RateLimitRate > 1 {
		return fmt.Errorf("simulation rate limit rate must be within [0,1], got %v", s.RateLimitRate)
	}
	if s.ServerErrorRate < 0 || s.ServerErrorRate > 1 {
		return fmt.Errorf("simulation server error rate must be within [0,1], got %v", s.ServerErrorRate)
	}
	return nil
}
