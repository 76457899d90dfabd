package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config se arma una sola vez al arrancar y se pasa explícito a cada constructor.
type Config struct {
	HTTP  HTTPConfig  `koanf:"http"`
	Store StoreConfig `koanf:"store"`
	Auth  AuthConfig  `koanf:"auth"`
	Log   LogConfig   `koanf:"log"`
}

type HTTPConfig struct {
	Port int `koanf:"port"`
}

type StoreConfig struct {
	// DSN vacío => storage in-memory.
	DSN         string `koanf:"dsn"`
	AutoMigrate bool   `koanf:"auto_migrate"`
}

type AuthConfig struct {
	Secret      string        `koanf:"secret"`
	TokenTTL    time.Duration `koanf:"token_ttl"`
	BcryptCost  int           `koanf:"bcrypt_cost"`
	AdminEmails []string      `koanf:"admin_emails"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	App    string `koanf:"app"`
}

func Default() Config {
	return Config{
		HTTP:  HTTPConfig{Port: 5000},
		Store: StoreConfig{AutoMigrate: true},
		Auth: AuthConfig{
			TokenTTL:   time.Hour,
			BcryptCost: 10,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "animal-training",
		},
	}
}

// envKeys mapea variables de entorno a keys de koanf.
var envKeys = map[string]string{
	"PORT":         "http.port",
	"DB_DSN":       "store.dsn",
	"AUTO_MIGRATE": "store.auto_migrate",
	"JWT_SECRET":   "auth.secret",
	"TOKEN_TTL":    "auth.token_ttl",
	"BCRYPT_COST":  "auth.bcrypt_cost",
	"ADMIN_EMAILS": "auth.admin_emails",
	"LOG_LEVEL":    "log.level",
	"LOG_FORMAT":   "log.format",
	"APP_NAME":     "log.app",
}

// flagKeys mapea flags de la CLI a keys de koanf.
var flagKeys = map[string]string{
	"port":         "http.port",
	"dsn":          "store.dsn",
	"auto-migrate": "store.auto_migrate",
	"log-level":    "log.level",
}

type LoadOptions struct {
	// File es un YAML opcional.
	File string
	// EnvFiles se cargan con godotenv antes de leer el entorno (no pisan variables ya seteadas).
	EnvFiles []string
	// Flags con prioridad máxima; solo cuentan los flags seteados explícitamente.
	Flags *pflag.FlagSet
}

// Load aplica, de menor a mayor prioridad: defaults, archivo, entorno, flags.
func Load(opts LoadOptions) (Config, error) {
	for _, f := range opts.EnvFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return Config{}, fmt.Errorf("load env file %s: %w", f, err)
			}
		}
	}

	k := koanf.New(".")

	if strings.TrimSpace(opts.File) != "" {
		if err := k.Load(file.Provider(opts.File), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", opts.File, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envValue), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, flagValue), nil); err != nil {
			return Config{}, fmt.Errorf("load flags: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Auth.AdminEmails = cleanList(cfg.Auth.AdminEmails)

	return cfg, nil
}

func envValue(key, value string) (string, any) {
	k, ok := envKeys[key]
	if !ok {
		return "", nil
	}
	if k == "auth.admin_emails" {
		return k, strings.Split(value, ",")
	}
	return k, value
}

func flagValue(f *pflag.Flag) (string, any) {
	k, ok := flagKeys[f.Name]
	if !ok || !f.Changed {
		return "", nil
	}
	return k, f.Value.String()
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Auth.Secret) == "" {
		errs = append(errs, errors.New("auth.secret (JWT_SECRET) is required"))
	}
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("http.port out of range: %d", c.HTTP.Port))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("auth.token_ttl must be positive: %s", c.Auth.TokenTTL))
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		errs = append(errs, fmt.Errorf("auth.bcrypt_cost out of range: %d", c.Auth.BcryptCost))
	}
	return errors.Join(errs...)
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTP.Port)
}
