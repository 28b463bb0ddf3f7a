package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const minJWTSecretLength = 32

type Config struct {
	HTTP      HTTPConfig
	GRPC      GRPCConfig
	Store     StoreConfig
	JWT       JWTConfig
	Tokens    TokenConfig
	Password  PasswordConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Links     LinkConfig
	Log       LogConfig
	OTel      OTelConfig

	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT" envDefault:"5s"`
	PurgeInterval    time.Duration `env:"PURGE_INTERVAL" envDefault:"1h"`
}

type HTTPConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type GRPCConfig struct {
	Host string `env:"GRPC_HOST" envDefault:"0.0.0.0"`
	Port string `env:"GRPC_PORT" envDefault:"50051"`
}

type StoreConfig struct {
	Driver         string `env:"STORE_DRIVER" envDefault:"mysql"`
	DSN            string `env:"STORE_DSN,required,notEmpty"`
	MigrateOnStart bool   `env:"STORE_MIGRATE_ON_START" envDefault:"false"`
}

type JWTConfig struct {
	Secret          string        `env:"JWT_SECRET,required,notEmpty"`
	Issuer          string        `env:"JWT_ISSUER" envDefault:"ms-go-authn"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`
}

type TokenConfig struct {
	VerifyEmailTTL   time.Duration `env:"VERIFY_EMAIL_TOKEN_TTL" envDefault:"24h"`
	ResetPasswordTTL time.Duration `env:"RESET_PASSWORD_TOKEN_TTL" envDefault:"1h"`
}

type PasswordConfig struct {
	Policy PasswordPolicy
	Argon2 Argon2Config
}

type Argon2Config struct {
	MemoryKB    uint32 `env:"ARGON2_MEMORY_KB" envDefault:"65536"`
	Time        uint32 `env:"ARGON2_TIME" envDefault:"1"`
	Parallelism uint8  `env:"ARGON2_PARALLELISM" envDefault:"2"`
}

// RedisConfig is optional. An empty address disables throttling and access
// token cutoffs.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type RateLimitConfig struct {
	SignInMaxAttempts int           `env:"SIGNIN_MAX_ATTEMPTS" envDefault:"5"`
	SignInWindow      time.Duration `env:"SIGNIN_WINDOW" envDefault:"15m"`
	ResetMaxRequests  int           `env:"RESET_MAX_REQUESTS" envDefault:"3"`
	ResetWindow       time.Duration `env:"RESET_WINDOW" envDefault:"1h"`
}

type LinkConfig struct {
	VerifyEmailURL   string `env:"VERIFY_EMAIL_URL" envDefault:"http://localhost:8080/auth/verify-email"`
	ResetPasswordURL string `env:"RESET_PASSWORD_URL" envDefault:"http://localhost:8080/auth/reset-password"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type OTelConfig struct {
	Enabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`
	Endpoint string `env:"OTEL_EXPORTER_ENDPOINT"`
}

type PasswordPolicy struct {
	MinLength        int  `env:"PASSWORD_MIN_LENGTH" envDefault:"6"`
	RequireUppercase bool `env:"PASSWORD_REQUIRE_UPPERCASE" envDefault:"false"`
	RequireLowercase bool `env:"PASSWORD_REQUIRE_LOWERCASE" envDefault:"false"`
	RequireNumber    bool `env:"PASSWORD_REQUIRE_NUMBER" envDefault:"false"`
	RequireSpecial   bool `env:"PASSWORD_REQUIRE_SPECIAL" envDefault:"false"`
}

func (p PasswordPolicy) Validate(password string) error {
	if len(password) < p.MinLength {
		return fmt.Errorf("password must be at least %d characters long", p.MinLength)
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsDigit(ch):
			hasNumber = true
		case unicode.IsPunct(ch) || unicode.IsSymbol(ch):
			hasSpecial = true
		}
	}

	var missing []string
	if p.RequireUppercase && !hasUpper {
		missing = append(missing, "uppercase letter")
	}
	if p.RequireLowercase && !hasLower {
		missing = append(missing, "lowercase letter")
	}
	if p.RequireNumber && !hasNumber {
		missing = append(missing, "number")
	}
	if p.RequireSpecial && !hasSpecial {
		missing = append(missing, "special character")
	}

	if len(missing) > 0 {
		return fmt.Errorf("password must contain at least one: %s", strings.Join(missing, ", "))
	}

	return nil
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignores error if not found)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.JWT.Secret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", minJWTSecretLength)
	}

	switch strings.ToLower(c.Store.Driver) {
	case "mysql", "sqlite", "postgres":
	default:
		return fmt.Errorf("STORE_DRIVER %q is not one of mysql, sqlite, postgres", c.Store.Driver)
	}

	if c.JWT.AccessTokenTTL <= 0 || c.JWT.RefreshTokenTTL <= 0 {
		return errors.New("ACCESS_TOKEN_TTL and REFRESH_TOKEN_TTL must be positive")
	}
	if c.Tokens.VerifyEmailTTL <= 0 || c.Tokens.ResetPasswordTTL <= 0 {
		return errors.New("VERIFY_EMAIL_TOKEN_TTL and RESET_PASSWORD_TOKEN_TTL must be positive")
	}
	if c.OperationTimeout <= 0 {
		return errors.New("OPERATION_TIMEOUT must be positive")
	}
	if c.PurgeInterval < 0 {
		return errors.New("PURGE_INTERVAL must not be negative")
	}
	if c.Password.Policy.MinLength < 1 {
		return errors.New("PASSWORD_MIN_LENGTH must be at least 1")
	}
	return nil
}

// RedisEnabled reports whether throttling and token cutoffs are backed by Redis.
func (c *Config) RedisEnabled() bool {
	return strings.TrimSpace(c.Redis.Addr) != ""
}
