package mcp

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"azure-postgresql-mcp/flexserver"
)

// Config holds the connection parameters. It is read once at startup and
// never changes afterwards.
type Config struct {
	Host           string
	Port           int
	User           string
	Password       string
	SSLMode        string
	AADEnabled     bool
	SubscriptionID string
	ResourceGroup  string
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	return loadConfig(os.LookupEnv)
}

func loadConfig(lookup func(string) (string, bool)) (Config, error) {
	env := func(name string) string {
		v, _ := lookup(name)
		return strings.TrimSpace(v)
	}

	cfg := Config{
		Host:           env(EnvHost),
		User:           env(EnvUser),
		Password:       env(EnvPassword),
		SSLMode:        env(EnvSSLMode),
		AADEnabled:     parseFlag(env(EnvUseAAD)),
		SubscriptionID: env(EnvSubscriptionID),
		ResourceGroup:  env(EnvResourceGroup),
		Port:           DefaultPort,
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = DefaultSSLMode
	}
	if p := env(EnvPort); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidPort, EnvPort, p)
		}
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first required parameter that is missing.
func (c Config) Validate() error {
	type requirement struct{ name, value string }

	required := []requirement{
		{EnvHost, c.Host},
		{EnvUser, c.User},
	}
	if c.AADEnabled {
		required = append(required,
			requirement{EnvSubscriptionID, c.SubscriptionID},
			requirement{EnvResourceGroup, c.ResourceGroup},
		)
	} else {
		required = append(required, requirement{EnvPassword, c.Password})
	}

	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingEnvironment, r.name)
		}
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}
	return nil
}

// ServerName is the flexible server name used for management plane lookups.
func (c Config) ServerName() string {
	return flexserver.ServerName(c.Host)
}

// DSN builds a lib/pq key/value connection string for database.
func (c Config) DSN(database, password string) string {
	parts := []string{
		"host=" + quoteDSNValue(c.Host),
		"port=" + strconv.Itoa(c.Port),
		"dbname=" + quoteDSNValue(database),
		"user=" + quoteDSNValue(c.User),
		"password=" + quoteDSNValue(password),
		"sslmode=" + quoteDSNValue(c.SSLMode),
	}
	return strings.Join(parts, " ")
}

// quoteDSNValue single-quotes values that lib/pq would otherwise split or
// misread (empty, whitespace, quotes, backslashes).
func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, " \t\n\r'\\") {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}

// parseFlag treats any non-empty value as enabled unless it parses as false.
func parseFlag(v string) bool {
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return b
}
